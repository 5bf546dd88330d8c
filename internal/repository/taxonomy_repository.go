package repository

import (
	"context"
	"encoding/json"

	"skillforge/internal/database"
	"skillforge/internal/domain/skill"
	"skillforge/internal/taxonomy"

	"github.com/google/uuid"
)

type PostgresTaxonomyRepository struct {
	db database.DB
}

func NewPostgresTaxonomyRepository(db database.DB) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{db: db}
}

func scanCategory(row database.Row) (taxonomy.Category, error) {
	var (
		c    taxonomy.Category
		subs []byte
	)
	if err := row.Scan(&c.Name, &c.Description, &subs); err != nil {
		if isNoRows(err) {
			return taxonomy.Category{}, ErrNotFound
		}
		return taxonomy.Category{}, err
	}
	if err := json.Unmarshal(subs, &c.Subcategories); err != nil {
		return taxonomy.Category{}, err
	}
	if c.Subcategories == nil {
		c.Subcategories = []taxonomy.Subcategory{}
	}
	return c, nil
}

func subcategoriesJSON(c taxonomy.Category) ([]byte, error) {
	subs := c.Subcategories
	if subs == nil {
		subs = []taxonomy.Subcategory{}
	}
	return json.Marshal(subs)
}

func (r *PostgresTaxonomyRepository) ListCategories(ctx context.Context) ([]taxonomy.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT name, description, subcategories FROM taxonomy_categories ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTaxonomyRepository) GetCategory(ctx context.Context, name string) (taxonomy.Category, error) {
	return scanCategory(r.db.QueryRow(ctx,
		`SELECT name, description, subcategories FROM taxonomy_categories WHERE lower(name) = lower($1)`,
		name,
	))
}

func (r *PostgresTaxonomyRepository) CreateCategory(ctx context.Context, c taxonomy.Category) (taxonomy.Category, error) {
	subs, err := subcategoriesJSON(c)
	if err != nil {
		return taxonomy.Category{}, err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO taxonomy_categories (name, description, subcategories) VALUES ($1, $2, $3)`,
		c.Name, c.Description, subs,
	)
	if err != nil {
		return taxonomy.Category{}, mapWriteErr(err)
	}
	return c, nil
}

func (r *PostgresTaxonomyRepository) UpdateCategory(ctx context.Context, name string, c taxonomy.Category) (taxonomy.Category, error) {
	subs, err := subcategoriesJSON(c)
	if err != nil {
		return taxonomy.Category{}, err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE taxonomy_categories SET name = $1, description = $2, subcategories = $3
		 WHERE lower(name) = lower($4)`,
		c.Name, c.Description, subs, name,
	)
	if err != nil {
		return taxonomy.Category{}, mapWriteErr(err)
	}
	if n == 0 {
		return taxonomy.Category{}, ErrNotFound
	}
	return c, nil
}

func (r *PostgresTaxonomyRepository) DeleteCategory(ctx context.Context, name string) error {
	n, err := r.db.Exec(ctx, `DELETE FROM taxonomy_categories WHERE lower(name) = lower($1)`, name)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresTaxonomyRepository) ListTags(ctx context.Context) ([]skill.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color, description FROM tags ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Tag, 0)
	for rows.Next() {
		var t skill.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTaxonomyRepository) CreateTag(ctx context.Context, t skill.Tag) (skill.Tag, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tags (id, name, color, description) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Color, t.Description,
	)
	if err != nil {
		return skill.Tag{}, mapWriteErr(err)
	}
	return t, nil
}

func (r *PostgresTaxonomyRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
