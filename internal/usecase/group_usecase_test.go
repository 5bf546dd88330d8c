package usecase

import (
	"context"
	"testing"

	"skillforge/internal/domain/group"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_HierarchyRejectsCycles(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	groups := NewGroupUsecase(repos.Groups, repos.Users, nil)

	eng, err := groups.CreateGroup(ctx, GroupInput{Name: "Engineering", Type: group.TypeDepartment})
	require.NoError(t, err)
	cloud, err := groups.CreateGroup(ctx, GroupInput{Name: "Cloud", Type: group.TypePractice, ParentGroupID: &eng.ID})
	require.NoError(t, err)
	squad, err := groups.CreateGroup(ctx, GroupInput{Name: "Platform Squad", Type: group.TypeSquad, ParentGroupID: &cloud.ID})
	require.NoError(t, err)

	_, err = groups.UpdateGroup(ctx, eng.ID, GroupInput{Name: "Engineering", Type: group.TypeDepartment, ParentGroupID: &squad.ID})
	assert.ErrorIs(t, err, ErrGroupCycle)
	_, err = groups.UpdateGroup(ctx, eng.ID, GroupInput{Name: "Engineering", Type: group.TypeDepartment, ParentGroupID: &eng.ID})
	assert.ErrorIs(t, err, ErrGroupCycle)

	missing := uuid.New()
	_, err = groups.CreateGroup(ctx, GroupInput{Name: "Orphan", Type: group.TypeSquad, ParentGroupID: &missing})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = groups.CreateGroup(ctx, GroupInput{Name: "Bad", Type: "Tribe"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = groups.CreateGroup(ctx, GroupInput{Name: "Owned", Type: group.TypeSquad, OwnerID: &missing})
	assert.ErrorIs(t, err, ErrUserNotFound)

	tree, err := groups.GetGroupTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, eng.ID, tree[0].Group.ID)
	require.Len(t, tree[0].Children, 1)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, squad.ID, tree[0].Children[0].Children[0].Group.ID)
}

func TestGroups_Memberships(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	groups := NewGroupUsecase(repos.Groups, repos.Users, nil)
	u := seedUser(t, repos, "Jean Grey")

	eng, err := groups.CreateGroup(ctx, GroupInput{Name: "Engineering", Type: group.TypeDepartment})
	require.NoError(t, err)
	data, err := groups.CreateGroup(ctx, GroupInput{Name: "Data", Type: group.TypePractice})
	require.NoError(t, err)

	_, err = groups.AddUserToGroup(ctx, eng.ID, u.ID, true)
	require.NoError(t, err)
	_, err = groups.AddUserToGroup(ctx, eng.ID, u.ID, false)
	assert.ErrorIs(t, err, ErrAlreadyMember)
	_, err = groups.AddUserToGroup(ctx, uuid.New(), u.ID, false)
	assert.ErrorIs(t, err, ErrGroupNotFound)
	_, err = groups.AddUserToGroup(ctx, eng.ID, uuid.New(), false)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = groups.AddUserToGroup(ctx, data.ID, u.ID, true)
	require.NoError(t, err)

	mine, err := groups.GetUserGroups(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, ug := range mine {
		assert.Equal(t, ug.Group.ID == data.ID, ug.IsPrimary, ug.Group.Name)
	}

	_, err = groups.UpdateUserGroupPrimary(ctx, eng.ID, u.ID, true)
	require.NoError(t, err)
	members, err := groups.GetGroupMembers(ctx, eng.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.True(t, members[0].IsPrimary)
	assert.Equal(t, "Jean Grey", members[0].User.Name)

	require.NoError(t, groups.RemoveUserFromGroup(ctx, data.ID, u.ID))
	assert.ErrorIs(t, groups.RemoveUserFromGroup(ctx, data.ID, u.ID), ErrMembershipNotFound)
	_, err = groups.UpdateUserGroupPrimary(ctx, data.ID, u.ID, true)
	assert.ErrorIs(t, err, ErrMembershipNotFound)

	require.NoError(t, groups.DeleteGroup(ctx, eng.ID))
	mine, err = groups.GetUserGroups(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.ErrorIs(t, groups.DeleteGroup(ctx, eng.ID), ErrGroupNotFound)
}
