package memory

import (
	"context"
	"sync"

	"skillforge/internal/domain/contract"
	"skillforge/internal/repository"

	"github.com/google/uuid"
)

// ArtifactRepository stores one kind of contract artifact.
type ArtifactRepository[T contract.Artifact[T]] struct {
	mu    sync.RWMutex
	items []T
}

func NewArtifactRepository[T contract.Artifact[T]]() *ArtifactRepository[T] {
	return &ArtifactRepository[T]{}
}

func (r *ArtifactRepository[T]) indexOf(projectID, id uuid.UUID) int {
	for i, it := range r.items {
		itemID, itemProject := it.Identity()
		if itemID == id && itemProject == projectID {
			return i
		}
	}
	return -1
}

func (r *ArtifactRepository[T]) List(_ context.Context, projectID uuid.UUID) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0)
	for _, it := range r.items {
		if _, p := it.Identity(); p == projectID {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

func (r *ArtifactRepository[T]) Get(_ context.Context, projectID, id uuid.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(projectID, id)
	if i < 0 {
		var zero T
		return zero, repository.ErrNotFound
	}
	return r.items[i].Clone(), nil
}

func (r *ArtifactRepository[T]) Create(_ context.Context, a T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, projectID := a.Identity()
	if r.indexOf(projectID, id) >= 0 {
		var zero T
		return zero, repository.ErrDuplicate
	}
	r.items = append(r.items, a.Clone())
	return a.Clone(), nil
}

func (r *ArtifactRepository[T]) Update(_ context.Context, a T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, projectID := a.Identity()
	i := r.indexOf(projectID, id)
	if i < 0 {
		var zero T
		return zero, repository.ErrNotFound
	}
	r.items[i] = a.Clone()
	return a.Clone(), nil
}

func (r *ArtifactRepository[T]) Delete(_ context.Context, projectID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(projectID, id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *ArtifactRepository[T]) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, it := range r.items {
		if _, p := it.Identity(); p != projectID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}
