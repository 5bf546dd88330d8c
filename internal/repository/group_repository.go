package repository

import (
	"context"

	"skillforge/internal/database"
	"skillforge/internal/domain/group"

	"github.com/google/uuid"
)

const groupColumns = `id, name, type, owner_id, parent_group_id, description`

type PostgresGroupRepository struct {
	db database.DB
}

func NewPostgresGroupRepository(db database.DB) *PostgresGroupRepository {
	return &PostgresGroupRepository{db: db}
}

func scanGroup(row database.Row) (group.Group, error) {
	var (
		g      group.Group
		owner  uuid.NullUUID
		parent uuid.NullUUID
	)
	if err := row.Scan(&g.ID, &g.Name, &g.Type, &owner, &parent, &g.Description); err != nil {
		if isNoRows(err) {
			return group.Group{}, ErrNotFound
		}
		return group.Group{}, err
	}
	g.OwnerID = fromNullUUID(owner)
	g.ParentGroupID = fromNullUUID(parent)
	return g, nil
}

func (r *PostgresGroupRepository) List(ctx context.Context) ([]group.Group, error) {
	rows, err := r.db.Query(ctx, `SELECT `+groupColumns+` FROM groups ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]group.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (group.Group, error) {
	return scanGroup(r.db.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id))
}

func (r *PostgresGroupRepository) Create(ctx context.Context, g group.Group) (group.Group, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO groups (`+groupColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.Name, g.Type, g.OwnerID, g.ParentGroupID, g.Description,
	)
	if err != nil {
		return group.Group{}, mapWriteErr(err)
	}
	return g, nil
}

func (r *PostgresGroupRepository) Update(ctx context.Context, g group.Group) (group.Group, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE groups SET name = $1, type = $2, owner_id = $3, parent_group_id = $4, description = $5
		 WHERE id = $6`,
		g.Name, g.Type, g.OwnerID, g.ParentGroupID, g.Description, g.ID,
	)
	if err != nil {
		return group.Group{}, err
	}
	if n == 0 {
		return group.Group{}, ErrNotFound
	}
	return g, nil
}

func (r *PostgresGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// user_groups rows go with the group through ON DELETE CASCADE.
	n, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresGroupRepository) memberships(ctx context.Context, where string, arg uuid.UUID) ([]group.Membership, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, group_id, is_primary FROM user_groups WHERE `+where+` = $1 ORDER BY position ASC`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]group.Membership, 0)
	for rows.Next() {
		var m group.Membership
		if err := rows.Scan(&m.UserID, &m.GroupID, &m.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGroupRepository) ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]group.Membership, error) {
	return r.memberships(ctx, "user_id", userID)
}

func (r *PostgresGroupRepository) ListMembershipsByGroup(ctx context.Context, groupID uuid.UUID) ([]group.Membership, error) {
	return r.memberships(ctx, "group_id", groupID)
}

func (r *PostgresGroupRepository) AddMember(ctx context.Context, m group.Membership) (group.Membership, error) {
	err := database.InTx(ctx, r.db, func(q database.Querier) error {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, m.GroupID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		if m.IsPrimary {
			if _, err := q.Exec(ctx, `UPDATE user_groups SET is_primary = FALSE WHERE user_id = $1`, m.UserID); err != nil {
				return err
			}
		}
		_, err := q.Exec(ctx,
			`INSERT INTO user_groups (user_id, group_id, is_primary) VALUES ($1, $2, $3)`,
			m.UserID, m.GroupID, m.IsPrimary,
		)
		return mapWriteErr(err)
	})
	if err != nil {
		return group.Membership{}, err
	}
	return m, nil
}

func (r *PostgresGroupRepository) RemoveMember(ctx context.Context, userID, groupID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM user_groups WHERE user_id = $1 AND group_id = $2`, userID, groupID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresGroupRepository) SetPrimary(ctx context.Context, userID, groupID uuid.UUID, primary bool) (group.Membership, error) {
	err := database.InTx(ctx, r.db, func(q database.Querier) error {
		if primary {
			if _, err := q.Exec(ctx, `UPDATE user_groups SET is_primary = FALSE WHERE user_id = $1`, userID); err != nil {
				return err
			}
		}
		n, err := q.Exec(ctx,
			`UPDATE user_groups SET is_primary = $1 WHERE user_id = $2 AND group_id = $3`,
			primary, userID, groupID,
		)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return group.Membership{}, err
	}
	return group.Membership{UserID: userID, GroupID: groupID, IsPrimary: primary}, nil
}
