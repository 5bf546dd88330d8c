package memory

import (
	"context"
	"strings"
	"sync"

	"skillforge/internal/domain/skill"
	"skillforge/internal/repository"
	"skillforge/internal/taxonomy"

	"github.com/google/uuid"
)

type TaxonomyRepository struct {
	mu         sync.RWMutex
	categories []taxonomy.Category
	tags       []skill.Tag
}

func NewTaxonomyRepository() *TaxonomyRepository {
	return &TaxonomyRepository{}
}

func cloneCategory(c taxonomy.Category) taxonomy.Category {
	subs := make([]taxonomy.Subcategory, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, taxonomy.Subcategory{Name: s.Name, Skills: cloneSlice(s.Skills)})
	}
	c.Subcategories = subs
	return c
}

func (r *TaxonomyRepository) categoryIndex(name string) int {
	for i := range r.categories {
		if strings.EqualFold(r.categories[i].Name, name) {
			return i
		}
	}
	return -1
}

func (r *TaxonomyRepository) ListCategories(_ context.Context) ([]taxonomy.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]taxonomy.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

func (r *TaxonomyRepository) GetCategory(_ context.Context, name string) (taxonomy.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.categoryIndex(name)
	if i < 0 {
		return taxonomy.Category{}, repository.ErrNotFound
	}
	return cloneCategory(r.categories[i]), nil
}

func (r *TaxonomyRepository) CreateCategory(_ context.Context, c taxonomy.Category) (taxonomy.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.categoryIndex(c.Name) >= 0 {
		return taxonomy.Category{}, repository.ErrDuplicate
	}
	r.categories = append(r.categories, cloneCategory(c))
	return cloneCategory(c), nil
}

func (r *TaxonomyRepository) UpdateCategory(_ context.Context, name string, c taxonomy.Category) (taxonomy.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.categoryIndex(name)
	if i < 0 {
		return taxonomy.Category{}, repository.ErrNotFound
	}
	if j := r.categoryIndex(c.Name); j >= 0 && j != i {
		return taxonomy.Category{}, repository.ErrDuplicate
	}
	r.categories[i] = cloneCategory(c)
	return cloneCategory(c), nil
}

func (r *TaxonomyRepository) DeleteCategory(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.categoryIndex(name)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.categories = append(r.categories[:i], r.categories[i+1:]...)
	return nil
}

func (r *TaxonomyRepository) ListTags(_ context.Context) ([]skill.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.tags), nil
}

func (r *TaxonomyRepository) CreateTag(_ context.Context, t skill.Tag) (skill.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tags {
		if existing.ID == t.ID || strings.EqualFold(existing.Name, t.Name) {
			return skill.Tag{}, repository.ErrDuplicate
		}
	}
	r.tags = append(r.tags, t)
	return t, nil
}

func (r *TaxonomyRepository) DeleteTag(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tags {
		if r.tags[i].ID == id {
			r.tags = append(r.tags[:i], r.tags[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
