package usecase

import (
	"context"
	"errors"
	"strings"

	"skillforge/internal/domain/group"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GroupInput struct {
	Name          string
	Type          group.Type
	OwnerID       *uuid.UUID
	ParentGroupID *uuid.UUID
	Description   string
}

type UserGroup struct {
	Group     group.Group `json:"group"`
	IsPrimary bool        `json:"is_primary"`
}

type GroupMember struct {
	User      CandidateUser `json:"user"`
	IsPrimary bool          `json:"is_primary"`
}

type GroupUsecase interface {
	GetGroups(ctx context.Context) ([]group.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (group.Group, error)
	GetGroupTree(ctx context.Context) ([]group.Node, error)
	CreateGroup(ctx context.Context, in GroupInput) (group.Group, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, in GroupInput) (group.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	GetUserGroups(ctx context.Context, userID uuid.UUID) ([]UserGroup, error)
	GetGroupMembers(ctx context.Context, groupID uuid.UUID) ([]GroupMember, error)
	AddUserToGroup(ctx context.Context, groupID, userID uuid.UUID, primary bool) (group.Membership, error)
	RemoveUserFromGroup(ctx context.Context, groupID, userID uuid.UUID) error
	UpdateUserGroupPrimary(ctx context.Context, groupID, userID uuid.UUID, primary bool) (group.Membership, error)
}

type Groups struct {
	groups repository.GroupRepository
	users  repository.UserRepository
	logger *zap.Logger
}

func NewGroupUsecase(groups repository.GroupRepository, users repository.UserRepository, logger *zap.Logger) *Groups {
	return &Groups{groups: groups, users: users, logger: logging.OrNop(logger)}
}

func (g *Groups) GetGroups(ctx context.Context) ([]group.Group, error) {
	list, err := g.groups.List(ctx)
	if err != nil {
		return nil, internal(g.logger, "list groups", err)
	}
	return list, nil
}

func (g *Groups) GetGroup(ctx context.Context, id uuid.UUID) (group.Group, error) {
	grp, err := g.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return group.Group{}, ErrGroupNotFound
		}
		return group.Group{}, internal(g.logger, "get group", err)
	}
	return grp, nil
}

func (g *Groups) GetGroupTree(ctx context.Context) ([]group.Node, error) {
	list, err := g.GetGroups(ctx)
	if err != nil {
		return nil, err
	}
	return group.BuildTree(list), nil
}

func (g *Groups) CreateGroup(ctx context.Context, in GroupInput) (group.Group, error) {
	grp, err := g.build(ctx, uuid.New(), in)
	if err != nil {
		return group.Group{}, err
	}
	created, err := g.groups.Create(ctx, grp)
	if err != nil {
		return group.Group{}, internal(g.logger, "create group", err)
	}
	return created, nil
}

func (g *Groups) UpdateGroup(ctx context.Context, id uuid.UUID, in GroupInput) (group.Group, error) {
	if _, err := g.GetGroup(ctx, id); err != nil {
		return group.Group{}, err
	}
	grp, err := g.build(ctx, id, in)
	if err != nil {
		return group.Group{}, err
	}
	updated, err := g.groups.Update(ctx, grp)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return group.Group{}, ErrGroupNotFound
		}
		return group.Group{}, internal(g.logger, "update group", err)
	}
	return updated, nil
}

// DeleteGroup removes the group and its memberships. Child groups keep
// their parent reference and surface as roots in the tree.
func (g *Groups) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := g.groups.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGroupNotFound
		}
		return internal(g.logger, "delete group", err)
	}
	g.logger.Info("group deleted", zap.String("group_id", id.String()))
	return nil
}

func (g *Groups) GetUserGroups(ctx context.Context, userID uuid.UUID) ([]UserGroup, error) {
	if err := g.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	ms, err := g.groups.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, internal(g.logger, "list user memberships", err)
	}
	out := make([]UserGroup, 0, len(ms))
	for _, m := range ms {
		grp, err := g.groups.GetByID(ctx, m.GroupID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, internal(g.logger, "get group", err)
		}
		out = append(out, UserGroup{Group: grp, IsPrimary: m.IsPrimary})
	}
	return out, nil
}

// GetGroupMembers lists the group's members. Memberships pointing at users
// that no longer exist are skipped.
func (g *Groups) GetGroupMembers(ctx context.Context, groupID uuid.UUID) ([]GroupMember, error) {
	if _, err := g.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	ms, err := g.groups.ListMembershipsByGroup(ctx, groupID)
	if err != nil {
		return nil, internal(g.logger, "list group memberships", err)
	}
	out := make([]GroupMember, 0, len(ms))
	for _, m := range ms {
		u, err := g.users.GetByID(ctx, m.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, internal(g.logger, "get member", err)
		}
		out = append(out, GroupMember{User: toCandidateUser(u), IsPrimary: m.IsPrimary})
	}
	return out, nil
}

func (g *Groups) AddUserToGroup(ctx context.Context, groupID, userID uuid.UUID, primary bool) (group.Membership, error) {
	if err := g.requireUser(ctx, userID); err != nil {
		return group.Membership{}, err
	}
	m, err := g.groups.AddMember(ctx, group.Membership{UserID: userID, GroupID: groupID, IsPrimary: primary})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return group.Membership{}, ErrGroupNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return group.Membership{}, ErrAlreadyMember
		}
		return group.Membership{}, internal(g.logger, "add member", err)
	}
	return m, nil
}

func (g *Groups) RemoveUserFromGroup(ctx context.Context, groupID, userID uuid.UUID) error {
	if err := g.groups.RemoveMember(ctx, userID, groupID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return internal(g.logger, "remove member", err)
	}
	return nil
}

// UpdateUserGroupPrimary sets or clears the primary flag. A user has at most
// one primary group, so setting it clears the flag everywhere else.
func (g *Groups) UpdateUserGroupPrimary(ctx context.Context, groupID, userID uuid.UUID, primary bool) (group.Membership, error) {
	m, err := g.groups.SetPrimary(ctx, userID, groupID, primary)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return group.Membership{}, ErrMembershipNotFound
		}
		return group.Membership{}, internal(g.logger, "set primary group", err)
	}
	return m, nil
}

func (g *Groups) build(ctx context.Context, id uuid.UUID, in GroupInput) (group.Group, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return group.Group{}, invalid("name is required")
	}
	if !in.Type.Valid() {
		return group.Group{}, invalid("unknown group type %q", in.Type)
	}
	if in.OwnerID != nil {
		if err := g.requireUser(ctx, *in.OwnerID); err != nil {
			return group.Group{}, err
		}
	}
	if in.ParentGroupID != nil {
		parentID := *in.ParentGroupID
		if parentID == id {
			return group.Group{}, ErrGroupCycle
		}
		all, err := g.GetGroups(ctx)
		if err != nil {
			return group.Group{}, err
		}
		found := false
		for _, other := range all {
			if other.ID == parentID {
				found = true
				break
			}
		}
		if !found {
			return group.Group{}, invalid("parent group does not exist")
		}
		if group.WouldCycle(all, id, parentID) {
			return group.Group{}, ErrGroupCycle
		}
	}
	return group.Group{
		ID:            id,
		Name:          name,
		Type:          in.Type,
		OwnerID:       in.OwnerID,
		ParentGroupID: in.ParentGroupID,
		Description:   strings.TrimSpace(in.Description),
	}, nil
}

func (g *Groups) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := g.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return internal(g.logger, "get user", err)
	}
	return nil
}
