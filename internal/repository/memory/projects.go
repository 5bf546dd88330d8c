package memory

import (
	"context"
	"sync"

	"skillforge/internal/domain/project"
	"skillforge/internal/repository"

	"github.com/google/uuid"
)

type ProjectRepository struct {
	mu       sync.RWMutex
	projects []project.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) indexOf(id uuid.UUID) int {
	for i := range r.projects {
		if r.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.projects), nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return project.Project{}, repository.ErrNotFound
	}
	return r.projects[i], nil
}

func (r *ProjectRepository) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(p.ID) >= 0 {
		return project.Project{}, repository.ErrDuplicate
	}
	r.projects = append(r.projects, p)
	return p, nil
}

func (r *ProjectRepository) Update(_ context.Context, p project.Project) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return project.Project{}, repository.ErrNotFound
	}
	r.projects[i] = p
	return p, nil
}

func (r *ProjectRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

type RoleRepository struct {
	mu    sync.RWMutex
	roles []project.Role
}

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{}
}

func cloneRole(r project.Role) project.Role {
	r.RequiredSkills = cloneSlice(r.RequiredSkills)
	r.SoftSkillPreferences = cloneSlice(r.SoftSkillPreferences)
	if r.RequiredSkills == nil {
		r.RequiredSkills = []project.SkillRequirement{}
	}
	return r
}

func (r *RoleRepository) indexOf(id uuid.UUID) int {
	for i := range r.roles {
		if r.roles[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *RoleRepository) ListByProject(_ context.Context, projectID uuid.UUID) ([]project.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]project.Role, 0)
	for _, role := range r.roles {
		if role.ProjectID == projectID {
			out = append(out, cloneRole(role))
		}
	}
	return out, nil
}

func (r *RoleRepository) GetByID(_ context.Context, id uuid.UUID) (project.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return project.Role{}, repository.ErrNotFound
	}
	return cloneRole(r.roles[i]), nil
}

func (r *RoleRepository) Create(_ context.Context, role project.Role) (project.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(role.ID) >= 0 {
		return project.Role{}, repository.ErrDuplicate
	}
	r.roles = append(r.roles, cloneRole(role))
	return cloneRole(role), nil
}

func (r *RoleRepository) Update(_ context.Context, role project.Role) (project.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(role.ID)
	if i < 0 {
		return project.Role{}, repository.ErrNotFound
	}
	r.roles[i] = cloneRole(role)
	return cloneRole(role), nil
}

func (r *RoleRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.roles = append(r.roles[:i], r.roles[i+1:]...)
	return nil
}

func (r *RoleRepository) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.roles[:0]
	for _, role := range r.roles {
		if role.ProjectID != projectID {
			kept = append(kept, role)
		}
	}
	r.roles = kept
	return nil
}

type AssignmentRepository struct {
	mu          sync.RWMutex
	assignments []project.Assignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

func (r *AssignmentRepository) indexOf(id uuid.UUID) int {
	for i := range r.assignments {
		if r.assignments[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *AssignmentRepository) filter(keep func(project.Assignment) bool) []project.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]project.Assignment, 0)
	for _, a := range r.assignments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (r *AssignmentRepository) List(_ context.Context) ([]project.Assignment, error) {
	return r.filter(func(project.Assignment) bool { return true }), nil
}

func (r *AssignmentRepository) ListByProject(_ context.Context, projectID uuid.UUID) ([]project.Assignment, error) {
	return r.filter(func(a project.Assignment) bool { return a.ProjectID == projectID }), nil
}

func (r *AssignmentRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]project.Assignment, error) {
	return r.filter(func(a project.Assignment) bool { return a.UserID == userID }), nil
}

func (r *AssignmentRepository) GetByID(_ context.Context, id uuid.UUID) (project.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return project.Assignment{}, repository.ErrNotFound
	}
	return r.assignments[i], nil
}

func (r *AssignmentRepository) Create(_ context.Context, a project.Assignment) (project.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(a.ID) >= 0 {
		return project.Assignment{}, repository.ErrDuplicate
	}
	r.assignments = append(r.assignments, a)
	return a, nil
}

func (r *AssignmentRepository) Update(_ context.Context, a project.Assignment) (project.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(a.ID)
	if i < 0 {
		return project.Assignment{}, repository.ErrNotFound
	}
	r.assignments[i] = a
	return a, nil
}

func (r *AssignmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
	return nil
}

func (r *AssignmentRepository) deleteWhere(drop func(project.Assignment) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.assignments[:0]
	for _, a := range r.assignments {
		if !drop(a) {
			kept = append(kept, a)
		}
	}
	r.assignments = kept
}

func (r *AssignmentRepository) DeleteByRole(_ context.Context, roleID uuid.UUID) error {
	r.deleteWhere(func(a project.Assignment) bool { return a.RoleID == roleID })
	return nil
}

func (r *AssignmentRepository) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	r.deleteWhere(func(a project.Assignment) bool { return a.ProjectID == projectID })
	return nil
}
