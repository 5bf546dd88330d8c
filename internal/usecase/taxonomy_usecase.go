package usecase

import (
	"context"
	"errors"
	"strings"

	"skillforge/internal/domain/skill"
	"skillforge/internal/logging"
	"skillforge/internal/repository"
	"skillforge/internal/taxonomy"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxSearchLimit = 50

type AddTagInput struct {
	Name        string
	Color       string
	Description string
}

type TaxonomyUsecase interface {
	GetCategories(ctx context.Context) ([]taxonomy.Category, error)
	AddCategory(ctx context.Context, c taxonomy.Category) (taxonomy.Category, error)
	UpdateCategory(ctx context.Context, name string, c taxonomy.Category) (taxonomy.Category, error)
	DeleteCategory(ctx context.Context, name string) error
	GetTags(ctx context.Context) ([]skill.Tag, error)
	AddTag(ctx context.Context, in AddTagInput) (skill.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	SearchSkills(ctx context.Context, query string, limit int) ([]taxonomy.Hit, error)
}

type Taxonomy struct {
	repo     repository.TaxonomyRepository
	synonyms map[string]string
	logger   *zap.Logger
}

func NewTaxonomyUsecase(repo repository.TaxonomyRepository, synonyms map[string]string, logger *zap.Logger) *Taxonomy {
	return &Taxonomy{repo: repo, synonyms: synonyms, logger: logging.OrNop(logger)}
}

// Bootstrap loads the document's categories and tags into an empty store.
// A store that already holds categories is left alone.
func (t *Taxonomy) Bootstrap(ctx context.Context, doc taxonomy.Document) error {
	existing, err := t.repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range doc.Categories {
		if _, err := t.repo.CreateCategory(ctx, c); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}
	for _, tg := range doc.Tags {
		_, err := t.repo.CreateTag(ctx, skill.Tag{ID: uuid.New(), Name: tg.Name, Color: tg.Color, Description: tg.Description})
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}
	t.logger.Info("taxonomy bootstrapped",
		zap.Int("categories", len(doc.Categories)),
		zap.Int("tags", len(doc.Tags)),
	)
	return nil
}

func (t *Taxonomy) GetCategories(ctx context.Context) ([]taxonomy.Category, error) {
	list, err := t.repo.ListCategories(ctx)
	if err != nil {
		return nil, internal(t.logger, "list categories", err)
	}
	return list, nil
}

func (t *Taxonomy) AddCategory(ctx context.Context, c taxonomy.Category) (taxonomy.Category, error) {
	c = normalizeCategory(c)
	if err := c.Validate(); err != nil {
		return taxonomy.Category{}, invalid("%v", err)
	}
	created, err := t.repo.CreateCategory(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return taxonomy.Category{}, ErrCategoryAlreadyExists
		}
		return taxonomy.Category{}, internal(t.logger, "create category", err)
	}
	return created, nil
}

func (t *Taxonomy) UpdateCategory(ctx context.Context, name string, c taxonomy.Category) (taxonomy.Category, error) {
	c = normalizeCategory(c)
	if c.Name == "" {
		c.Name = strings.TrimSpace(name)
	}
	if err := c.Validate(); err != nil {
		return taxonomy.Category{}, invalid("%v", err)
	}
	updated, err := t.repo.UpdateCategory(ctx, name, c)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return taxonomy.Category{}, ErrCategoryNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return taxonomy.Category{}, ErrCategoryAlreadyExists
		}
		return taxonomy.Category{}, internal(t.logger, "update category", err)
	}
	return updated, nil
}

func (t *Taxonomy) DeleteCategory(ctx context.Context, name string) error {
	if err := t.repo.DeleteCategory(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return internal(t.logger, "delete category", err)
	}
	return nil
}

func (t *Taxonomy) GetTags(ctx context.Context) ([]skill.Tag, error) {
	list, err := t.repo.ListTags(ctx)
	if err != nil {
		return nil, internal(t.logger, "list tags", err)
	}
	return list, nil
}

func (t *Taxonomy) AddTag(ctx context.Context, in AddTagInput) (skill.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Tag{}, invalid("tag name is required")
	}
	created, err := t.repo.CreateTag(ctx, skill.Tag{
		ID:          uuid.New(),
		Name:        name,
		Color:       strings.TrimSpace(in.Color),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return skill.Tag{}, ErrTagAlreadyExists
		}
		return skill.Tag{}, internal(t.logger, "create tag", err)
	}
	return created, nil
}

func (t *Taxonomy) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := t.repo.DeleteTag(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTagNotFound
		}
		return internal(t.logger, "delete tag", err)
	}
	return nil
}

// SearchSkills searches the stored catalog, so categories added at runtime
// are searchable straight away.
func (t *Taxonomy) SearchSkills(ctx context.Context, query string, limit int) ([]taxonomy.Hit, error) {
	if limit < 0 {
		return nil, invalid("limit must not be negative")
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	cats, err := t.repo.ListCategories(ctx)
	if err != nil {
		return nil, internal(t.logger, "search skills", err)
	}
	return taxonomy.NewCatalog(cats, t.synonyms).Search(query, limit), nil
}

func normalizeCategory(c taxonomy.Category) taxonomy.Category {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	subs := make([]taxonomy.Subcategory, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		skills := make([]string, 0, len(s.Skills))
		for _, name := range s.Skills {
			if name = strings.TrimSpace(name); name != "" {
				skills = append(skills, name)
			}
		}
		subs = append(subs, taxonomy.Subcategory{Name: strings.TrimSpace(s.Name), Skills: skills})
	}
	c.Subcategories = subs
	return c
}
