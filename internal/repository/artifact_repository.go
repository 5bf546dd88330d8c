package repository

import (
	"context"
	"encoding/json"

	"skillforge/internal/database"
	"skillforge/internal/domain/contract"

	"github.com/google/uuid"
)

// PostgresArtifactRepository keeps one artifact kind in contract_artifacts as
// a JSONB payload.
type PostgresArtifactRepository[T contract.Artifact[T]] struct {
	db   database.DB
	kind contract.Kind
}

func NewPostgresArtifactRepository[T contract.Artifact[T]](db database.DB, kind contract.Kind) *PostgresArtifactRepository[T] {
	return &PostgresArtifactRepository[T]{db: db, kind: kind}
}

func decodeArtifact[T any](payload []byte) (T, error) {
	var out T
	err := json.Unmarshal(payload, &out)
	return out, err
}

func (r *PostgresArtifactRepository[T]) List(ctx context.Context, projectID uuid.UUID) ([]T, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payload FROM contract_artifacts WHERE project_id = $1 AND kind = $2 ORDER BY position ASC`,
		projectID, string(r.kind),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		a, err := decodeArtifact[T](payload)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresArtifactRepository[T]) Get(ctx context.Context, projectID, id uuid.UUID) (T, error) {
	var zero T
	var payload []byte
	err := r.db.QueryRow(ctx,
		`SELECT payload FROM contract_artifacts WHERE id = $1 AND project_id = $2 AND kind = $3`,
		id, projectID, string(r.kind),
	).Scan(&payload)
	if err != nil {
		if isNoRows(err) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return decodeArtifact[T](payload)
}

func (r *PostgresArtifactRepository[T]) Create(ctx context.Context, a T) (T, error) {
	var zero T
	payload, err := json.Marshal(a)
	if err != nil {
		return zero, err
	}
	id, projectID := a.Identity()
	_, err = r.db.Exec(ctx,
		`INSERT INTO contract_artifacts (id, project_id, kind, payload) VALUES ($1, $2, $3, $4)`,
		id, projectID, string(r.kind), payload,
	)
	if err != nil {
		return zero, mapWriteErr(err)
	}
	return a, nil
}

func (r *PostgresArtifactRepository[T]) Update(ctx context.Context, a T) (T, error) {
	var zero T
	payload, err := json.Marshal(a)
	if err != nil {
		return zero, err
	}
	id, projectID := a.Identity()
	n, err := r.db.Exec(ctx,
		`UPDATE contract_artifacts SET payload = $1, updated_at = now()
		 WHERE id = $2 AND project_id = $3 AND kind = $4`,
		payload, id, projectID, string(r.kind),
	)
	if err != nil {
		return zero, err
	}
	if n == 0 {
		return zero, ErrNotFound
	}
	return a, nil
}

func (r *PostgresArtifactRepository[T]) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM contract_artifacts WHERE id = $1 AND project_id = $2 AND kind = $3`,
		id, projectID, string(r.kind),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresArtifactRepository[T]) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM contract_artifacts WHERE project_id = $1 AND kind = $2`,
		projectID, string(r.kind),
	)
	return err
}
