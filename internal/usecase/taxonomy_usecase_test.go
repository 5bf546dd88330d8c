package usecase

import (
	"context"
	"testing"

	"skillforge/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaxonomyFixture(t *testing.T) *Taxonomy {
	t.Helper()
	doc := taxonomy.Default()
	tx := NewTaxonomyUsecase(newRepos().Taxonomy, doc.Synonyms, nil)
	require.NoError(t, tx.Bootstrap(context.Background(), doc))
	return tx
}

func TestTaxonomy_BootstrapIsIdempotent(t *testing.T) {
	ctx := context.Background()
	tx := newTaxonomyFixture(t)
	doc := taxonomy.Default()

	require.NoError(t, tx.Bootstrap(ctx, doc))
	cats, err := tx.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(doc.Categories))

	tags, err := tx.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, len(doc.Tags))
}

func TestTaxonomy_SearchSkillsUsesSynonymsAndRuntimeCategories(t *testing.T) {
	ctx := context.Background()
	tx := newTaxonomyFixture(t)

	hits, err := tx.SearchSkills(ctx, "k8s", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Kubernetes", hits[0].Skill)

	_, err = tx.AddCategory(ctx, taxonomy.Category{
		Name:          "Quantum",
		Subcategories: []taxonomy.Subcategory{{Name: "Frameworks", Skills: []string{"Qiskit"}}},
	})
	require.NoError(t, err)
	hits, err = tx.SearchSkills(ctx, "qisk", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Quantum", hits[0].Category)

	_, err = tx.SearchSkills(ctx, "go", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTaxonomy_CategoryAndTagErrors(t *testing.T) {
	ctx := context.Background()
	tx := newTaxonomyFixture(t)

	_, err := tx.AddCategory(ctx, taxonomy.Category{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = tx.AddCategory(ctx, taxonomy.Category{Name: "Blockchain"})
	require.NoError(t, err)
	_, err = tx.AddCategory(ctx, taxonomy.Category{Name: "blockchain"})
	assert.ErrorIs(t, err, ErrCategoryAlreadyExists)

	renamed, err := tx.UpdateCategory(ctx, "Blockchain", taxonomy.Category{Name: "Web3", Description: "Distributed ledgers"})
	require.NoError(t, err)
	assert.Equal(t, "Web3", renamed.Name)
	_, err = tx.UpdateCategory(ctx, "Blockchain", taxonomy.Category{Name: "Web3"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	require.NoError(t, tx.DeleteCategory(ctx, "web3"))
	assert.ErrorIs(t, tx.DeleteCategory(ctx, "web3"), ErrCategoryNotFound)

	tag, err := tx.AddTag(ctx, AddTagInput{Name: "Billable", Color: "#00ff00"})
	require.NoError(t, err)
	_, err = tx.AddTag(ctx, AddTagInput{Name: "billable"})
	assert.ErrorIs(t, err, ErrTagAlreadyExists)
	_, err = tx.AddTag(ctx, AddTagInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, tx.DeleteTag(ctx, tag.ID))
	assert.ErrorIs(t, tx.DeleteTag(ctx, uuid.New()), ErrTagNotFound)
}
