package matching

import (
	"testing"

	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(name string, lvl skill.ProficiencyLevel) project.SkillRequirement {
	return project.SkillRequirement{SkillName: name, Category: "Engineering", Subcategory: "Frontend", MinProficiency: lvl}
}

func have(name string, lvl skill.ProficiencyLevel) skill.Skill {
	return skill.Skill{Name: name, Category: "Engineering", Subcategory: "Frontend", Proficiency: lvl}
}

func TestCalculate_SurplusIsClamped(t *testing.T) {
	res := Calculate(
		[]project.SkillRequirement{req("React", 3)},
		[]skill.Skill{have("React", 5)},
	)

	assert.Equal(t, 100.0, res.MatchPercentage)
	require.Len(t, res.MatchedSkills, 1)
	assert.Equal(t, MatchedSkill{SkillName: "React", Required: 3, Actual: 5}, res.MatchedSkills[0])
	assert.Empty(t, res.MissingSkills)
}

func TestCalculate_PartialCoverageWithDeficit(t *testing.T) {
	res := Calculate(
		[]project.SkillRequirement{req("React", 4), req("TypeScript", 3)},
		[]skill.Skill{have("React", 3)},
	)

	// base 50, one level short costs 10
	assert.InDelta(t, 40.0, res.MatchPercentage, 1e-9)
	require.Len(t, res.MissingSkills, 1)
	assert.Equal(t, "TypeScript", res.MissingSkills[0].SkillName)
}

func TestCalculate_PartialCoverageWithSurplus(t *testing.T) {
	res := Calculate(
		[]project.SkillRequirement{req("React", 3), req("TypeScript", 3)},
		[]skill.Skill{have("React", 5)},
	)

	assert.InDelta(t, 60.0, res.MatchPercentage, 1e-9)
}

func TestCalculate_NeverBelowZero(t *testing.T) {
	res := Calculate(
		[]project.SkillRequirement{req("React", 5), req("A", 5), req("B", 5), req("C", 5)},
		[]skill.Skill{have("React", 1)},
	)

	assert.Equal(t, 0.0, res.MatchPercentage)
	assert.Len(t, res.MissingSkills, 3)
}

func TestCalculate_CategoryMustMatch(t *testing.T) {
	other := have("React", 5)
	other.Subcategory = "Mobile"

	res := Calculate([]project.SkillRequirement{req("React", 3)}, []skill.Skill{other})

	assert.Equal(t, 0.0, res.MatchPercentage)
	assert.Empty(t, res.MatchedSkills)
	assert.Len(t, res.MissingSkills, 1)
}

func TestCalculate_NoRequirementsScoresFull(t *testing.T) {
	res := Calculate(nil, []skill.Skill{have("React", 1)})

	assert.Equal(t, 100.0, res.MatchPercentage)
	assert.Empty(t, res.MissingSkills)
	assert.NotNil(t, res.MatchedSkills)
}

func TestCalculate_MonotonicInProficiency(t *testing.T) {
	reqs := []project.SkillRequirement{req("React", 3), req("Go", 4)}
	prev := -1.0
	for lvl := skill.ProficiencyLevel(1); lvl <= 5; lvl++ {
		res := Calculate(reqs, []skill.Skill{have("React", lvl)})
		assert.GreaterOrEqual(t, res.MatchPercentage, prev, "level %d", lvl)
		assert.GreaterOrEqual(t, res.MatchPercentage, 0.0)
		assert.LessOrEqual(t, res.MatchPercentage, 100.0)
		prev = res.MatchPercentage
	}
}

func TestCalculate_AllMetAtOrAboveIsFull(t *testing.T) {
	reqs := []project.SkillRequirement{req("React", 3), req("TypeScript", 3), req("Node.js", 3)}
	skills := []skill.Skill{have("React", 3), have("TypeScript", 4), have("Node.js", 3), have("Go", 2)}

	res := Calculate(reqs, skills)

	assert.Equal(t, 100.0, res.MatchPercentage)
	assert.Len(t, res.MatchedSkills, 3)
}
