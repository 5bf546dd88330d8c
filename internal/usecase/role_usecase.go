package usecase

import (
	"context"
	"errors"
	"strings"

	"skillforge/internal/domain/project"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoleInput struct {
	Title                string
	Count                int
	RequiredSkills       []project.SkillRequirement
	SoftSkillPreferences []string
	Description          string
}

type RoleUsecase interface {
	GetProjectRoles(ctx context.Context, projectID uuid.UUID) ([]project.Role, error)
	CreateProjectRole(ctx context.Context, projectID uuid.UUID, in RoleInput) (project.Role, error)
	UpdateProjectRole(ctx context.Context, roleID uuid.UUID, in RoleInput) (project.Role, error)
	DeleteProjectRole(ctx context.Context, roleID uuid.UUID) error
}

type Roles struct {
	projects    repository.ProjectRepository
	roles       repository.RoleRepository
	assignments repository.AssignmentRepository
	cache       SearchCache
	notifier    StaffingNotifier
	logger      *zap.Logger
}

func NewRoleUsecase(repos repository.Repositories, cache SearchCache, notifier StaffingNotifier, logger *zap.Logger) *Roles {
	return &Roles{
		projects:    repos.Projects,
		roles:       repos.Roles,
		assignments: repos.Assignments,
		cache:       cache,
		notifier:    notifier,
		logger:      logging.OrNop(logger),
	}
}

func (r *Roles) GetProjectRoles(ctx context.Context, projectID uuid.UUID) ([]project.Role, error) {
	if _, err := getProject(ctx, r.projects, r.logger, projectID); err != nil {
		return nil, err
	}
	list, err := r.roles.ListByProject(ctx, projectID)
	if err != nil {
		return nil, internal(r.logger, "list roles", err)
	}
	return list, nil
}

func (r *Roles) CreateProjectRole(ctx context.Context, projectID uuid.UUID, in RoleInput) (project.Role, error) {
	if _, err := getProject(ctx, r.projects, r.logger, projectID); err != nil {
		return project.Role{}, err
	}
	role, err := buildRole(uuid.New(), projectID, in)
	if err != nil {
		return project.Role{}, err
	}
	created, err := r.roles.Create(ctx, role)
	if err != nil {
		return project.Role{}, internal(r.logger, "create role", err)
	}
	return created, nil
}

// UpdateProjectRole replaces the role wholesale. The project it belongs to
// never changes.
func (r *Roles) UpdateProjectRole(ctx context.Context, roleID uuid.UUID, in RoleInput) (project.Role, error) {
	current, err := getRole(ctx, r.roles, r.logger, roleID)
	if err != nil {
		return project.Role{}, err
	}
	role, err := buildRole(roleID, current.ProjectID, in)
	if err != nil {
		return project.Role{}, err
	}
	updated, err := r.roles.Update(ctx, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Role{}, ErrRoleNotFound
		}
		return project.Role{}, internal(r.logger, "update role", err)
	}
	invalidateStaffing(ctx, r.cache, r.logger)
	return updated, nil
}

// DeleteProjectRole removes the role and every assignment made against it.
func (r *Roles) DeleteProjectRole(ctx context.Context, roleID uuid.UUID) error {
	current, err := getRole(ctx, r.roles, r.logger, roleID)
	if err != nil {
		return err
	}
	if err := r.assignments.DeleteByRole(ctx, roleID); err != nil {
		return internal(r.logger, "delete role assignments", err)
	}
	if err := r.roles.Delete(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoleNotFound
		}
		return internal(r.logger, "delete role", err)
	}
	invalidateStaffing(ctx, r.cache, r.logger)
	notifyStaffing(r.notifier, current.ProjectID, uuid.Nil, "role_deleted")
	return nil
}

func buildRole(id, projectID uuid.UUID, in RoleInput) (project.Role, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return project.Role{}, invalid("title is required")
	}
	if in.Count < 1 {
		return project.Role{}, invalid("count must be at least 1")
	}
	reqs := make([]project.SkillRequirement, 0, len(in.RequiredSkills))
	for _, req := range in.RequiredSkills {
		req.SkillName = strings.TrimSpace(req.SkillName)
		req.Category = strings.TrimSpace(req.Category)
		req.Subcategory = strings.TrimSpace(req.Subcategory)
		if req.SkillName == "" || req.Category == "" || req.Subcategory == "" {
			return project.Role{}, invalid("required skills need skill_name, category and subcategory")
		}
		if !req.MinProficiency.Valid() {
			return project.Role{}, ErrInvalidProficiencyLevel
		}
		reqs = append(reqs, req)
	}
	soft := make([]string, 0, len(in.SoftSkillPreferences))
	for _, s := range in.SoftSkillPreferences {
		if s = strings.TrimSpace(s); s != "" {
			soft = append(soft, s)
		}
	}
	return project.Role{
		ID:                   id,
		ProjectID:            projectID,
		Title:                title,
		Count:                in.Count,
		RequiredSkills:       reqs,
		SoftSkillPreferences: soft,
		Description:          strings.TrimSpace(in.Description),
	}, nil
}

func getRole(ctx context.Context, repo repository.RoleRepository, logger *zap.Logger, id uuid.UUID) (project.Role, error) {
	role, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Role{}, ErrRoleNotFound
		}
		return project.Role{}, internal(logger, "get role", err)
	}
	return role, nil
}
