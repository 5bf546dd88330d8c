package matching

import (
	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"
)

const (
	surplusBonus   = 5.0
	deficitPenalty = 10.0
)

type MatchedSkill struct {
	SkillName string                 `json:"skill_name"`
	Required  skill.ProficiencyLevel `json:"required"`
	Actual    skill.ProficiencyLevel `json:"actual"`
}

type Result struct {
	MatchPercentage float64                    `json:"match_percentage"`
	MatchedSkills   []MatchedSkill             `json:"matched_skills"`
	MissingSkills   []project.SkillRequirement `json:"missing_skills"`
}

// Calculate scores a candidate's skills against a role's requirements.
// A requirement is met only by a skill with the same name, category and
// subcategory. Coverage gives the base score; every matched skill then adds
// five points per level above the minimum or loses ten per level below it.
// A role with no requirements scores 100.
func Calculate(reqs []project.SkillRequirement, skills []skill.Skill) Result {
	matched := make([]MatchedSkill, 0, len(reqs))
	missing := make([]project.SkillRequirement, 0)

	if len(reqs) == 0 {
		return Result{MatchPercentage: 100, MatchedSkills: matched, MissingSkills: missing}
	}

	var bonus float64
	for _, r := range reqs {
		s, ok := find(skills, r)
		if !ok {
			missing = append(missing, r)
			continue
		}

		actual := s.Proficiency
		required := r.MinProficiency
		if actual >= required {
			bonus += float64(actual-required) * surplusBonus
		} else {
			bonus -= float64(required-actual) * deficitPenalty
		}
		matched = append(matched, MatchedSkill{SkillName: r.SkillName, Required: required, Actual: actual})
	}

	base := float64(len(matched)) / float64(len(reqs)) * 100

	return Result{
		MatchPercentage: clamp(base+bonus, 0, 100),
		MatchedSkills:   matched,
		MissingSkills:   missing,
	}
}

func find(skills []skill.Skill, r project.SkillRequirement) (skill.Skill, bool) {
	for _, s := range skills {
		if s.SameAs(r.SkillName, r.Category, r.Subcategory) {
			return s, true
		}
	}
	return skill.Skill{}, false
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
