package memory

import (
	"context"
	"sync"

	"skillforge/internal/domain/group"
	"skillforge/internal/repository"

	"github.com/google/uuid"
)

type GroupRepository struct {
	mu          sync.RWMutex
	groups      []group.Group
	memberships []group.Membership
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{}
}

func (r *GroupRepository) indexOf(id uuid.UUID) int {
	for i := range r.groups {
		if r.groups[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *GroupRepository) membershipIndex(userID, groupID uuid.UUID) int {
	for i, m := range r.memberships {
		if m.UserID == userID && m.GroupID == groupID {
			return i
		}
	}
	return -1
}

func (r *GroupRepository) List(_ context.Context) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.groups), nil
}

func (r *GroupRepository) GetByID(_ context.Context, id uuid.UUID) (group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return group.Group{}, repository.ErrNotFound
	}
	return r.groups[i], nil
}

func (r *GroupRepository) Create(_ context.Context, g group.Group) (group.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(g.ID) >= 0 {
		return group.Group{}, repository.ErrDuplicate
	}
	r.groups = append(r.groups, g)
	return g, nil
}

func (r *GroupRepository) Update(_ context.Context, g group.Group) (group.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(g.ID)
	if i < 0 {
		return group.Group{}, repository.ErrNotFound
	}
	r.groups[i] = g
	return g, nil
}

func (r *GroupRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.groups = append(r.groups[:i], r.groups[i+1:]...)

	kept := r.memberships[:0]
	for _, m := range r.memberships {
		if m.GroupID != id {
			kept = append(kept, m)
		}
	}
	r.memberships = kept
	return nil
}

func (r *GroupRepository) ListMembershipsByUser(_ context.Context, userID uuid.UUID) ([]group.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Membership, 0)
	for _, m := range r.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *GroupRepository) ListMembershipsByGroup(_ context.Context, groupID uuid.UUID) ([]group.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Membership, 0)
	for _, m := range r.memberships {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *GroupRepository) AddMember(_ context.Context, m group.Membership) (group.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(m.GroupID) < 0 {
		return group.Membership{}, repository.ErrNotFound
	}
	if r.membershipIndex(m.UserID, m.GroupID) >= 0 {
		return group.Membership{}, repository.ErrDuplicate
	}
	if m.IsPrimary {
		r.clearPrimary(m.UserID)
	}
	r.memberships = append(r.memberships, m)
	return m, nil
}

func (r *GroupRepository) RemoveMember(_ context.Context, userID, groupID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.membershipIndex(userID, groupID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.memberships = append(r.memberships[:i], r.memberships[i+1:]...)
	return nil
}

func (r *GroupRepository) SetPrimary(_ context.Context, userID, groupID uuid.UUID, primary bool) (group.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.membershipIndex(userID, groupID)
	if i < 0 {
		return group.Membership{}, repository.ErrNotFound
	}
	if primary {
		r.clearPrimary(userID)
	}
	r.memberships[i].IsPrimary = primary
	return r.memberships[i], nil
}

func (r *GroupRepository) clearPrimary(userID uuid.UUID) {
	for i := range r.memberships {
		if r.memberships[i].UserID == userID {
			r.memberships[i].IsPrimary = false
		}
	}
}
