package usecase

import (
	"context"
	"time"

	"skillforge/internal/domain/health"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProjectHealth struct {
	ProjectID uuid.UUID `json:"project_id"`
	AsOf      time.Time `json:"as_of"`
	health.Report
}

type HealthUsecase interface {
	GetProjectHealth(ctx context.Context, projectID uuid.UUID, asOf time.Time) (ProjectHealth, error)
}

type Health struct {
	repos  repository.Repositories
	logger *zap.Logger
}

func NewHealthUsecase(repos repository.Repositories, logger *zap.Logger) *Health {
	return &Health{repos: repos, logger: logging.OrNop(logger)}
}

// GetProjectHealth evaluates the project as of asOf; a zero asOf means now.
func (h *Health) GetProjectHealth(ctx context.Context, projectID uuid.UUID, asOf time.Time) (ProjectHealth, error) {
	if _, err := getProject(ctx, h.repos.Projects, h.logger, projectID); err != nil {
		return ProjectHealth{}, err
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	in := health.Input{AsOf: asOf}
	var err error
	if in.Roles, err = h.repos.Roles.ListByProject(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health roles", err)
	}
	if in.Assignments, err = h.repos.Assignments.ListByProject(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health assignments", err)
	}
	c := h.repos.Contracts
	if in.SOWs, err = c.SOWs.List(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health sows", err)
	}
	if in.ChangeRequests, err = c.ChangeRequests.List(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health change requests", err)
	}
	if in.Risks, err = c.Risks.List(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health risks", err)
	}
	if in.Dependencies, err = c.Dependencies.List(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health dependencies", err)
	}
	if in.Documents, err = c.Documents.List(ctx, projectID); err != nil {
		return ProjectHealth{}, internal(h.logger, "health documents", err)
	}

	return ProjectHealth{ProjectID: projectID, AsOf: asOf, Report: health.Evaluate(in)}, nil
}
