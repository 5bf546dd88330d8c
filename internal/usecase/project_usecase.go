package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillforge/internal/domain/project"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProjectInput struct {
	Name        string
	ClientName  string
	ProjectCode string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Status      project.Status
	OwnerID     uuid.UUID
	Portfolio   string
}

type ProjectUsecase interface {
	GetProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (project.Project, error)
	CreateProject(ctx context.Context, in ProjectInput) (project.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (project.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type Projects struct {
	repos    repository.Repositories
	cache    SearchCache
	notifier StaffingNotifier
	logger   *zap.Logger
}

func NewProjectUsecase(repos repository.Repositories, cache SearchCache, notifier StaffingNotifier, logger *zap.Logger) *Projects {
	return &Projects{repos: repos, cache: cache, notifier: notifier, logger: logging.OrNop(logger)}
}

func (p *Projects) GetProjects(ctx context.Context) ([]project.Project, error) {
	list, err := p.repos.Projects.List(ctx)
	if err != nil {
		return nil, internal(p.logger, "list projects", err)
	}
	return list, nil
}

func (p *Projects) GetProject(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return getProject(ctx, p.repos.Projects, p.logger, id)
}

func (p *Projects) CreateProject(ctx context.Context, in ProjectInput) (project.Project, error) {
	pr, err := buildProject(uuid.New(), in)
	if err != nil {
		return project.Project{}, err
	}
	created, err := p.repos.Projects.Create(ctx, pr)
	if err != nil {
		return project.Project{}, internal(p.logger, "create project", err)
	}
	p.logger.Info("project created", zap.String("project_id", created.ID.String()), zap.String("name", created.Name))
	return created, nil
}

func (p *Projects) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (project.Project, error) {
	pr, err := buildProject(id, in)
	if err != nil {
		return project.Project{}, err
	}
	updated, err := p.repos.Projects.Update(ctx, pr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, internal(p.logger, "update project", err)
	}
	// Project names feed utilization results.
	invalidateStaffing(ctx, p.cache, p.logger)
	return updated, nil
}

// DeleteProject removes the project together with its roles, assignments
// and contract artifacts.
func (p *Projects) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := p.GetProject(ctx, id); err != nil {
		return err
	}

	c := p.repos.Contracts
	cascade := []struct {
		name string
		fn   func(context.Context, uuid.UUID) error
	}{
		{"assignments", p.repos.Assignments.DeleteByProject},
		{"roles", p.repos.Roles.DeleteByProject},
		{"sows", c.SOWs.DeleteByProject},
		{"change requests", c.ChangeRequests.DeleteByProject},
		{"risks", c.Risks.DeleteByProject},
		{"dependencies", c.Dependencies.DeleteByProject},
		{"documents", c.Documents.DeleteByProject},
	}
	for _, step := range cascade {
		if err := step.fn(ctx, id); err != nil {
			return internal(p.logger, "delete project "+step.name, err)
		}
	}

	if err := p.repos.Projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return internal(p.logger, "delete project", err)
	}

	invalidateStaffing(ctx, p.cache, p.logger)
	notifyStaffing(p.notifier, id, uuid.Nil, "project_deleted")
	p.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

func buildProject(id uuid.UUID, in ProjectInput) (project.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return project.Project{}, invalid("name is required")
	}
	status := in.Status
	if status == "" {
		status = project.StatusPipeline
	}
	if !status.Valid() {
		return project.Project{}, invalid("unknown status %q", status)
	}
	if in.OwnerID == uuid.Nil {
		return project.Project{}, invalid("owner_id is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return project.Project{}, invalid("start_date and end_date are required")
	}
	if in.EndDate.Before(in.StartDate) {
		return project.Project{}, invalid("end_date before start_date")
	}
	return project.Project{
		ID:          id,
		Name:        name,
		ClientName:  strings.TrimSpace(in.ClientName),
		ProjectCode: strings.TrimSpace(in.ProjectCode),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		OwnerID:     in.OwnerID,
		Portfolio:   strings.TrimSpace(in.Portfolio),
	}, nil
}

func getProject(ctx context.Context, repo repository.ProjectRepository, logger *zap.Logger, id uuid.UUID) (project.Project, error) {
	pr, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, internal(logger, "get project", err)
	}
	return pr, nil
}
