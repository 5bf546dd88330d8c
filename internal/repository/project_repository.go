package repository

import (
	"context"
	"encoding/json"

	"skillforge/internal/database"
	"skillforge/internal/domain/project"

	"github.com/google/uuid"
)

const projectColumns = `id, name, client_name, project_code, start_date, end_date, description, status, owner_id, portfolio`

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func scanProject(row database.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Name, &p.ClientName, &p.ProjectCode, &p.StartDate, &p.EndDate,
		&p.Description, &p.Status, &p.OwnerID, &p.Portfolio)
	if err != nil {
		if isNoRows(err) {
			return project.Project{}, ErrNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.ClientName, p.ProjectCode, p.StartDate, p.EndDate,
		p.Description, p.Status, p.OwnerID, p.Portfolio,
	)
	if err != nil {
		return project.Project{}, mapWriteErr(err)
	}
	return p, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE projects
		 SET name = $1, client_name = $2, project_code = $3, start_date = $4, end_date = $5,
		     description = $6, status = $7, owner_id = $8, portfolio = $9
		 WHERE id = $10`,
		p.Name, p.ClientName, p.ProjectCode, p.StartDate, p.EndDate,
		p.Description, p.Status, p.OwnerID, p.Portfolio, p.ID,
	)
	if err != nil {
		return project.Project{}, err
	}
	if n == 0 {
		return project.Project{}, ErrNotFound
	}
	return p, nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const roleColumns = `id, project_id, title, count, required_skills, soft_skill_preferences, description`

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func scanRole(row database.Row) (project.Role, error) {
	var (
		role      project.Role
		required  []byte
		softSkill []byte
	)
	err := row.Scan(&role.ID, &role.ProjectID, &role.Title, &role.Count, &required, &softSkill, &role.Description)
	if err != nil {
		if isNoRows(err) {
			return project.Role{}, ErrNotFound
		}
		return project.Role{}, err
	}
	if err := json.Unmarshal(required, &role.RequiredSkills); err != nil {
		return project.Role{}, err
	}
	if err := json.Unmarshal(softSkill, &role.SoftSkillPreferences); err != nil {
		return project.Role{}, err
	}
	if role.RequiredSkills == nil {
		role.RequiredSkills = []project.SkillRequirement{}
	}
	return role, nil
}

func roleJSON(role project.Role) ([]byte, []byte, error) {
	reqs := role.RequiredSkills
	if reqs == nil {
		reqs = []project.SkillRequirement{}
	}
	soft := role.SoftSkillPreferences
	if soft == nil {
		soft = []string{}
	}
	a, err := json.Marshal(reqs)
	if err != nil {
		return nil, nil, err
	}
	b, err := json.Marshal(soft)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (r *PostgresRoleRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roleColumns+` FROM project_roles WHERE project_id = $1 ORDER BY position ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Role, error) {
	return scanRole(r.db.QueryRow(ctx, `SELECT `+roleColumns+` FROM project_roles WHERE id = $1`, id))
}

func (r *PostgresRoleRepository) Create(ctx context.Context, role project.Role) (project.Role, error) {
	reqs, soft, err := roleJSON(role)
	if err != nil {
		return project.Role{}, err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO project_roles (`+roleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		role.ID, role.ProjectID, role.Title, role.Count, reqs, soft, role.Description,
	)
	if err != nil {
		return project.Role{}, mapWriteErr(err)
	}
	return role, nil
}

func (r *PostgresRoleRepository) Update(ctx context.Context, role project.Role) (project.Role, error) {
	reqs, soft, err := roleJSON(role)
	if err != nil {
		return project.Role{}, err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE project_roles
		 SET title = $1, count = $2, required_skills = $3, soft_skill_preferences = $4, description = $5
		 WHERE id = $6`,
		role.Title, role.Count, reqs, soft, role.Description, role.ID,
	)
	if err != nil {
		return project.Role{}, err
	}
	if n == 0 {
		return project.Role{}, ErrNotFound
	}
	return role, nil
}

func (r *PostgresRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM project_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRoleRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM project_roles WHERE project_id = $1`, projectID)
	return err
}

const assignmentColumns = `id, project_id, user_id, role_id, role_title, allocation_percent, start_date, end_date, status, booking_type, notes`

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

func scanAssignment(row database.Row) (project.Assignment, error) {
	var a project.Assignment
	err := row.Scan(&a.ID, &a.ProjectID, &a.UserID, &a.RoleID, &a.RoleTitle, &a.AllocationPercent,
		&a.StartDate, &a.EndDate, &a.Status, &a.BookingType, &a.Notes)
	if err != nil {
		if isNoRows(err) {
			return project.Assignment{}, ErrNotFound
		}
		return project.Assignment{}, err
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) query(ctx context.Context, where string, args ...any) ([]project.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM project_assignments `+where+` ORDER BY position ASC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
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

func (r *PostgresAssignmentRepository) List(ctx context.Context) ([]project.Assignment, error) {
	return r.query(ctx, "")
}

func (r *PostgresAssignmentRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.Assignment, error) {
	return r.query(ctx, "WHERE project_id = $1", projectID)
}

func (r *PostgresAssignmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Assignment, error) {
	return r.query(ctx, "WHERE user_id = $1", userID)
}

func (r *PostgresAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Assignment, error) {
	return scanAssignment(r.db.QueryRow(ctx, `SELECT `+assignmentColumns+` FROM project_assignments WHERE id = $1`, id))
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a project.Assignment) (project.Assignment, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_assignments (`+assignmentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.ProjectID, a.UserID, a.RoleID, a.RoleTitle, a.AllocationPercent,
		a.StartDate, a.EndDate, a.Status, a.BookingType, a.Notes,
	)
	if err != nil {
		return project.Assignment{}, mapWriteErr(err)
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) Update(ctx context.Context, a project.Assignment) (project.Assignment, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE project_assignments
		 SET project_id = $1, user_id = $2, role_id = $3, role_title = $4, allocation_percent = $5,
		     start_date = $6, end_date = $7, status = $8, booking_type = $9, notes = $10
		 WHERE id = $11`,
		a.ProjectID, a.UserID, a.RoleID, a.RoleTitle, a.AllocationPercent,
		a.StartDate, a.EndDate, a.Status, a.BookingType, a.Notes, a.ID,
	)
	if err != nil {
		return project.Assignment{}, err
	}
	if n == 0 {
		return project.Assignment{}, ErrNotFound
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM project_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresAssignmentRepository) DeleteByRole(ctx context.Context, roleID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM project_assignments WHERE role_id = $1`, roleID)
	return err
}

func (r *PostgresAssignmentRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM project_assignments WHERE project_id = $1`, projectID)
	return err
}
