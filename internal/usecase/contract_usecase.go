package usecase

import (
	"context"
	"errors"

	"skillforge/internal/domain/contract"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ArtifactService manages one kind of project contract artifact. Every
// operation is scoped to a project that must exist.
type ArtifactService[T contract.Artifact[T]] struct {
	kind     contract.Kind
	projects repository.ProjectRepository
	store    repository.ArtifactRepository[T]
	logger   *zap.Logger
}

func NewArtifactService[T contract.Artifact[T]](kind contract.Kind, projects repository.ProjectRepository, store repository.ArtifactRepository[T], logger *zap.Logger) *ArtifactService[T] {
	return &ArtifactService[T]{
		kind:     kind,
		projects: projects,
		store:    store,
		logger:   logging.OrNop(logger).With(zap.String("artifact_kind", string(kind))),
	}
}

func (s *ArtifactService[T]) Kind() contract.Kind {
	return s.kind
}

func (s *ArtifactService[T]) List(ctx context.Context, projectID uuid.UUID) ([]T, error) {
	if _, err := getProject(ctx, s.projects, s.logger, projectID); err != nil {
		return nil, err
	}
	list, err := s.store.List(ctx, projectID)
	if err != nil {
		return nil, internal(s.logger, "list artifacts", err)
	}
	return list, nil
}

func (s *ArtifactService[T]) Get(ctx context.Context, projectID, id uuid.UUID) (T, error) {
	var zero T
	if _, err := getProject(ctx, s.projects, s.logger, projectID); err != nil {
		return zero, err
	}
	a, err := s.store.Get(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrArtifactNotFound
		}
		return zero, internal(s.logger, "get artifact", err)
	}
	return a, nil
}

func (s *ArtifactService[T]) Create(ctx context.Context, projectID uuid.UUID, a T) (T, error) {
	var zero T
	if _, err := getProject(ctx, s.projects, s.logger, projectID); err != nil {
		return zero, err
	}
	a = a.WithIdentity(uuid.New(), projectID)
	if err := a.Validate(); err != nil {
		return zero, invalid("%v", err)
	}
	created, err := s.store.Create(ctx, a)
	if err != nil {
		return zero, internal(s.logger, "create artifact", err)
	}
	return created, nil
}

// Update replaces the stored artifact. The id and project come from the
// path, never from the body.
func (s *ArtifactService[T]) Update(ctx context.Context, projectID, id uuid.UUID, a T) (T, error) {
	var zero T
	if _, err := getProject(ctx, s.projects, s.logger, projectID); err != nil {
		return zero, err
	}
	a = a.WithIdentity(id, projectID)
	if err := a.Validate(); err != nil {
		return zero, invalid("%v", err)
	}
	updated, err := s.store.Update(ctx, a)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrArtifactNotFound
		}
		return zero, internal(s.logger, "update artifact", err)
	}
	return updated, nil
}

func (s *ArtifactService[T]) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	if _, err := getProject(ctx, s.projects, s.logger, projectID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, projectID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrArtifactNotFound
		}
		return internal(s.logger, "delete artifact", err)
	}
	return nil
}

type Contracts struct {
	SOWs           *ArtifactService[contract.SOW]
	ChangeRequests *ArtifactService[contract.ChangeRequest]
	Risks          *ArtifactService[contract.Risk]
	Dependencies   *ArtifactService[contract.Dependency]
	Documents      *ArtifactService[contract.Document]
}

func NewContractUsecases(repos repository.Repositories, logger *zap.Logger) Contracts {
	c := repos.Contracts
	return Contracts{
		SOWs:           NewArtifactService(contract.KindSOW, repos.Projects, c.SOWs, logger),
		ChangeRequests: NewArtifactService(contract.KindChangeRequest, repos.Projects, c.ChangeRequests, logger),
		Risks:          NewArtifactService(contract.KindRisk, repos.Projects, c.Risks, logger),
		Dependencies:   NewArtifactService(contract.KindDependency, repos.Projects, c.Dependencies, logger),
		Documents:      NewArtifactService(contract.KindDocument, repos.Projects, c.Documents, logger),
	}
}
