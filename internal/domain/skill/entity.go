package skill

import "github.com/google/uuid"

type ProficiencyLevel int

const (
	ProficiencyNovice    ProficiencyLevel = 1
	ProficiencyLearner   ProficiencyLevel = 2
	ProficiencyCompetent ProficiencyLevel = 3
	ProficiencyAdvanced  ProficiencyLevel = 4
	ProficiencyExpert    ProficiencyLevel = 5
)

var proficiencyDescriptions = map[ProficiencyLevel]string{
	ProficiencyNovice:    "Novice: Understands basic concepts; requires full supervision.",
	ProficiencyLearner:   "Learner: Can perform basic tasks; requires frequent guidance.",
	ProficiencyCompetent: "Competent: Independent worker; can solve standard problems.",
	ProficiencyAdvanced:  "Advanced: Specialist; can mentor others and handle complex edge cases.",
	ProficiencyExpert:    "Expert: Thought leader; defines standards and strategy for this skill.",
}

func (p ProficiencyLevel) Valid() bool {
	return p >= ProficiencyNovice && p <= ProficiencyExpert
}

func (p ProficiencyLevel) Description() string {
	return proficiencyDescriptions[p]
}

// Skill is a skill held by a user. Identity inside a profile is the
// (Name, Category, Subcategory) triple.
type Skill struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Subcategory       string           `json:"subcategory"`
	Proficiency       ProficiencyLevel `json:"proficiency"`
	Verified          bool             `json:"verified"`
	YearsOfExperience *int             `json:"years_of_experience,omitempty"`
	CertificationURL  string           `json:"certification_url,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	Tags              []uuid.UUID      `json:"tags,omitempty"`
}

func (s Skill) SameAs(name, category, subcategory string) bool {
	return s.Name == name && s.Category == category && s.Subcategory == subcategory
}

type Tag struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
}
