package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	doc := Default()
	return NewCatalog(doc.Categories, doc.Synonyms)
}

func TestDefault_ShipsFullCatalog(t *testing.T) {
	doc := Default()

	require.Len(t, doc.Categories, 9)
	assert.Equal(t, "Application Development", doc.Categories[0].Name)
	assert.Equal(t, "Kubernetes", doc.Synonyms["K8s"])
	require.Len(t, doc.Tags, 3)
	assert.Equal(t, "#4caf50", doc.Tags[0].Color)
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "nodejs", NormalizeQuery("  Node.js "))
	assert.Equal(t, "cicd pipelines", NormalizeQuery("CI/CD   Pipelines"))
	assert.Equal(t, "", NormalizeQuery(" ... "))
}

func TestSearch_ExactBeforePrefix(t *testing.T) {
	hits := defaultCatalog(t).Search("react", 0)

	require.GreaterOrEqual(t, len(hits), 2)
	assert.Equal(t, "React", hits[0].Skill)
	assert.Equal(t, "React Native", hits[1].Skill)
}

func TestSearch_ResolvesSynonyms(t *testing.T) {
	c := defaultCatalog(t)

	hits := c.Search("K8s", 5)
	require.NotEmpty(t, hits)
	assert.Equal(t, Hit{Skill: "Kubernetes", Category: "Platform Engineering", Subcategory: "DevOps"}, hits[0])

	hits = c.Search("golang", 5)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Go", hits[0].Skill)

	hits = c.Search("node", 5)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Node.js", hits[0].Skill)
}

func TestSearch_SameSkillInSeveralCategories(t *testing.T) {
	hits := defaultCatalog(t).Search("stakeholder management", 10)

	require.Len(t, hits, 2)
	assert.Equal(t, "Consulting", hits[0].Category)
	assert.Equal(t, "Project and Client Delivery", hits[1].Category)
}

func TestSearch_LimitAndEmpty(t *testing.T) {
	c := defaultCatalog(t)

	assert.Empty(t, c.Search("   ", 10))
	assert.Len(t, c.Search("a", 3), 3)
	assert.Empty(t, c.Search("zzzz-not-a-skill", 10))
}

func TestLookup(t *testing.T) {
	c := defaultCatalog(t)

	hit, ok := c.Lookup("TS")
	require.True(t, ok)
	assert.Equal(t, "TypeScript", hit.Skill)
	assert.Equal(t, "Languages", hit.Subcategory)

	_, ok = c.Lookup("COBOL")
	assert.False(t, ok)
}

func TestLoad_OverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	content := `
categories:
  - name: Data
    description: Data work
    subcategories:
      - name: Engines
        skills: [PostgreSQL, Redis]
synonyms:
  PG: PostgreSQL
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Categories, 1)

	c := NewCatalog(doc.Categories, doc.Synonyms)
	hit, ok := c.Lookup("pg")
	require.True(t, ok)
	assert.Equal(t, "PostgreSQL", hit.Skill)
}

func TestParse_RejectsDuplicateCategories(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - name: A
  - name: A
`))
	require.ErrorIs(t, err, ErrInvalidCategory)
}
