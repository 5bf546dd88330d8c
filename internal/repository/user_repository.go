package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"skillforge/internal/database"
	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, password_hash, role, department, avatar_url, tenure, title, location, status, is_admin, created_at, updated_at`

const skillColumns = `id, user_id, name, category, subcategory, proficiency, verified, years_of_experience, certification_url, notes, tags`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func scanUserRow(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Department, &u.AvatarURL,
		&u.Tenure, &u.Title, &u.Location, &u.Status, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, err
	}
	u.Skills = []skill.Skill{}
	return u, nil
}

func scanSkillRow(row database.Row) (uuid.UUID, skill.Skill, error) {
	var (
		s      skill.Skill
		userID uuid.UUID
		tags   []byte
	)
	if err := row.Scan(&s.ID, &userID, &s.Name, &s.Category, &s.Subcategory, &s.Proficiency, &s.Verified,
		&s.YearsOfExperience, &s.CertificationURL, &s.Notes, &tags); err != nil {
		return uuid.Nil, skill.Skill{}, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &s.Tags); err != nil {
			return uuid.Nil, skill.Skill{}, err
		}
	}
	return userID, s, nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	index := map[uuid.UUID]int{}
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		index[u.ID] = len(out)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillRows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM user_skills ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	for skillRows.Next() {
		userID, s, err := scanSkillRow(skillRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[userID]; ok {
			out[i].Skills = append(out[i].Skills, s)
		}
	}
	if err := skillRows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) withSkills(ctx context.Context, u user.User) (user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM user_skills WHERE user_id = $1 ORDER BY position ASC`,
		u.ID,
	)
	if err != nil {
		return user.User{}, err
	}
	defer rows.Close()

	for rows.Next() {
		_, s, err := scanSkillRow(rows)
		if err != nil {
			return user.User{}, err
		}
		u.Skills = append(u.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := scanUserRow(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return user.User{}, err
	}
	return r.withSkills(ctx, u)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUserRow(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return user.User{}, err
	}
	return r.withSkills(ctx, u)
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	err := database.InTx(ctx, r.db, func(q database.Querier) error {
		if _, err := q.Exec(ctx,
			`INSERT INTO users (`+userColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Department, u.AvatarURL,
			u.Tenure, u.Title, u.Location, u.Status, u.IsAdmin, u.CreatedAt, u.UpdatedAt,
		); err != nil {
			return mapWriteErr(err)
		}
		for _, s := range u.Skills {
			if err := insertSkill(ctx, q, u.ID, s); err != nil {
				return mapWriteErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	if u.Skills == nil {
		u.Skills = []skill.Skill{}
	}
	return u, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, role = $3, department = $4, avatar_url = $5, tenure = $6,
		     title = $7, location = $8, status = $9, is_admin = $10, updated_at = now()
		 WHERE id = $11`,
		u.Name, u.Email, u.Role, u.Department, u.AvatarURL, u.Tenure,
		u.Title, u.Location, u.Status, u.IsAdmin, u.ID,
	)
	if err != nil {
		return user.User{}, mapWriteErr(err)
	}
	if n == 0 {
		return user.User{}, ErrNotFound
	}
	return r.GetByID(ctx, u.ID)
}

func insertSkill(ctx context.Context, db database.Querier, userID uuid.UUID, s skill.Skill) error {
	tags, err := json.Marshal(nonNilUUIDs(s.Tags))
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO user_skills (`+skillColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, userID, s.Name, s.Category, s.Subcategory, s.Proficiency, s.Verified,
		s.YearsOfExperience, s.CertificationURL, s.Notes, tags,
	)
	return err
}

func nonNilUUIDs(in []uuid.UUID) []uuid.UUID {
	if in == nil {
		return []uuid.UUID{}
	}
	return in
}

func (r *PostgresUserRepository) AddSkill(ctx context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return skill.Skill{}, err
	}
	if !exists {
		return skill.Skill{}, ErrNotFound
	}
	if err := insertSkill(ctx, r.db, userID, s); err != nil {
		return skill.Skill{}, mapWriteErr(err)
	}
	return s, nil
}

func (r *PostgresUserRepository) UpdateSkill(ctx context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error) {
	tags, err := json.Marshal(nonNilUUIDs(s.Tags))
	if err != nil {
		return skill.Skill{}, err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE user_skills
		 SET name = $1, category = $2, subcategory = $3, proficiency = $4, verified = $5,
		     years_of_experience = $6, certification_url = $7, notes = $8, tags = $9
		 WHERE id = $10 AND user_id = $11`,
		s.Name, s.Category, s.Subcategory, s.Proficiency, s.Verified,
		s.YearsOfExperience, s.CertificationURL, s.Notes, tags, s.ID, userID,
	)
	if err != nil {
		return skill.Skill{}, mapWriteErr(err)
	}
	if n == 0 {
		return skill.Skill{}, ErrNotFound
	}
	return s, nil
}
