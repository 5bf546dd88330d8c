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

// AssignmentInput describes a booking. Empty status and booking type default
// to Proposed and Soft.
type AssignmentInput struct {
	UserID            uuid.UUID
	RoleID            uuid.UUID
	AllocationPercent int
	StartDate         time.Time
	EndDate           time.Time
	Status            project.AssignmentStatus
	BookingType       project.BookingType
	Notes             string
}

type AssignmentUsecase interface {
	GetProjectAssignments(ctx context.Context, projectID uuid.UUID) ([]project.Assignment, error)
	CreateAssignment(ctx context.Context, projectID uuid.UUID, in AssignmentInput) (project.Assignment, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, in AssignmentInput) (project.Assignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type Assignments struct {
	repos    repository.Repositories
	cache    SearchCache
	notifier StaffingNotifier
	logger   *zap.Logger
}

func NewAssignmentUsecase(repos repository.Repositories, cache SearchCache, notifier StaffingNotifier, logger *zap.Logger) *Assignments {
	return &Assignments{repos: repos, cache: cache, notifier: notifier, logger: logging.OrNop(logger)}
}

func (a *Assignments) GetProjectAssignments(ctx context.Context, projectID uuid.UUID) ([]project.Assignment, error) {
	if _, err := getProject(ctx, a.repos.Projects, a.logger, projectID); err != nil {
		return nil, err
	}
	list, err := a.repos.Assignments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, internal(a.logger, "list assignments", err)
	}
	return list, nil
}

func (a *Assignments) CreateAssignment(ctx context.Context, projectID uuid.UUID, in AssignmentInput) (project.Assignment, error) {
	if _, err := getProject(ctx, a.repos.Projects, a.logger, projectID); err != nil {
		return project.Assignment{}, err
	}
	asg, err := a.build(ctx, uuid.New(), projectID, in)
	if err != nil {
		return project.Assignment{}, err
	}
	created, err := a.repos.Assignments.Create(ctx, asg)
	if err != nil {
		return project.Assignment{}, internal(a.logger, "create assignment", err)
	}
	a.changed(ctx, created, "created")
	return created, nil
}

func (a *Assignments) UpdateAssignment(ctx context.Context, id uuid.UUID, in AssignmentInput) (project.Assignment, error) {
	current, err := a.get(ctx, id)
	if err != nil {
		return project.Assignment{}, err
	}
	asg, err := a.build(ctx, id, current.ProjectID, in)
	if err != nil {
		return project.Assignment{}, err
	}
	updated, err := a.repos.Assignments.Update(ctx, asg)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Assignment{}, ErrAssignmentNotFound
		}
		return project.Assignment{}, internal(a.logger, "update assignment", err)
	}
	a.changed(ctx, updated, "updated")
	return updated, nil
}

func (a *Assignments) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	current, err := a.get(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repos.Assignments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return internal(a.logger, "delete assignment", err)
	}
	a.changed(ctx, current, "deleted")
	return nil
}

func (a *Assignments) changed(ctx context.Context, asg project.Assignment, action string) {
	invalidateStaffing(ctx, a.cache, a.logger)
	notifyStaffing(a.notifier, asg.ProjectID, asg.ID, action)
	a.logger.Info("assignment "+action,
		zap.String("assignment_id", asg.ID.String()),
		zap.String("project_id", asg.ProjectID.String()),
		zap.String("user_id", asg.UserID.String()),
	)
}

func (a *Assignments) get(ctx context.Context, id uuid.UUID) (project.Assignment, error) {
	asg, err := a.repos.Assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Assignment{}, ErrAssignmentNotFound
		}
		return project.Assignment{}, internal(a.logger, "get assignment", err)
	}
	return asg, nil
}

// build validates the input and resolves the role title. The role must
// belong to the assignment's project.
func (a *Assignments) build(ctx context.Context, id, projectID uuid.UUID, in AssignmentInput) (project.Assignment, error) {
	if in.AllocationPercent < 1 || in.AllocationPercent > 100 {
		return project.Assignment{}, invalid("allocation_percent must be between 1 and 100")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return project.Assignment{}, invalid("start_date and end_date are required")
	}
	if in.EndDate.Before(in.StartDate) {
		return project.Assignment{}, invalid("end_date before start_date")
	}
	status := in.Status
	if status == "" {
		status = project.AssignmentProposed
	}
	if !status.Valid() {
		return project.Assignment{}, invalid("unknown status %q", status)
	}
	booking := in.BookingType
	if booking == "" {
		booking = project.BookingSoft
	}
	if !booking.Valid() {
		return project.Assignment{}, invalid("unknown booking_type %q", booking)
	}

	if _, err := a.repos.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.Assignment{}, ErrUserNotFound
		}
		return project.Assignment{}, internal(a.logger, "get user", err)
	}
	role, err := getRole(ctx, a.repos.Roles, a.logger, in.RoleID)
	if err != nil {
		return project.Assignment{}, err
	}
	if role.ProjectID != projectID {
		return project.Assignment{}, invalid("role does not belong to project")
	}

	return project.Assignment{
		ID:                id,
		ProjectID:         projectID,
		UserID:            in.UserID,
		RoleID:            role.ID,
		RoleTitle:         role.Title,
		AllocationPercent: in.AllocationPercent,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Status:            status,
		BookingType:       booking,
		Notes:             strings.TrimSpace(in.Notes),
	}, nil
}
