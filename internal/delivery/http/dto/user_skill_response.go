package dto

import "skillforge/internal/domain/skill"

// SkillResponse carries the proficiency description alongside the level.
type SkillResponse struct {
	skill.Skill
	ProficiencyDescription string `json:"proficiency_description"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{Skill: s, ProficiencyDescription: s.Proficiency.Description()}
}
