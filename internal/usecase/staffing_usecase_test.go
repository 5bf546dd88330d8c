package usecase

import (
	"context"
	"testing"
	"time"

	"skillforge/internal/domain/project"
	"skillforge/internal/domain/user"
	"skillforge/internal/domain/utilization"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffing_SearchUsersForRole(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	staffing := NewStaffingUsecase(repos, nil, nil)

	p := seedProject(t, repos, "Apollo")
	role := seedRole(t, repos, p.ID, 2, reactReq(3))

	expert := seedUser(t, repos, "Expert Busy", reactSkill(5))
	seedUser(t, repos, "Novice", reactSkill(1))
	seedUser(t, repos, "No Skills")
	idle := seedUser(t, repos, "Expert Idle", reactSkill(5))
	inactive := seedUser(t, repos, "Gone", reactSkill(5))
	inactive.Status = user.StatusInactive
	_, err := repos.Users.Update(ctx, inactive)
	require.NoError(t, err)

	seedAssignment(t, repos, role, expert.ID, 50, project.AssignmentActive)

	got, err := staffing.SearchUsersForRole(ctx, role.ID, SearchParams{})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, idle.ID, got[0].User.ID)
	assert.Equal(t, 100.0, got[0].Match.MatchPercentage)
	assert.Equal(t, 0, got[0].Utilization)
	assert.Equal(t, expert.ID, got[1].User.ID)
	assert.Equal(t, 50, got[1].Utilization)
	assert.Equal(t, 80.0, got[2].Match.MatchPercentage)
	assert.Equal(t, "No Skills", got[3].User.Name)
	assert.Equal(t, 0.0, got[3].Match.MatchPercentage)
	assert.Len(t, got[3].Match.MissingSkills, 1)

	filtered, err := staffing.SearchUsersForRole(ctx, role.ID, SearchParams{MinScore: 90})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	limited, err := staffing.SearchUsersForRole(ctx, role.ID, SearchParams{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = staffing.SearchUsersForRole(ctx, uuid.New(), SearchParams{})
	assert.ErrorIs(t, err, ErrRoleNotFound)
	_, err = staffing.SearchUsersForRole(ctx, role.ID, SearchParams{MinScore: 101})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStaffing_SearchUsesCacheUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	cache := newFakeCache()
	staffing := NewStaffingUsecase(repos, cache, nil)
	users := NewUserUsecase(repos.Users, cache, nil)

	p := seedProject(t, repos, "Apollo")
	role := seedRole(t, repos, p.ID, 1, reactReq(3))
	seedUser(t, repos, "First", reactSkill(3))

	first, err := staffing.SearchUsersForRole(ctx, role.ID, SearchParams{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Seeded directly, so the cache still serves the old list.
	seedUser(t, repos, "Second", reactSkill(4))
	cached, err := staffing.SearchUsersForRole(ctx, role.ID, SearchParams{})
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	_, err = users.CreateUser(ctx, CreateUserInput{Name: "Third", Email: "third@example.com", Password: "password123"})
	require.NoError(t, err)
	fresh, err := staffing.SearchUsersForRole(ctx, role.ID, SearchParams{})
	require.NoError(t, err)
	require.Len(t, fresh, 3)
	assert.Equal(t, "First", fresh[0].User.Name)
	assert.Equal(t, "Second", fresh[1].User.Name)
	assert.Equal(t, "Third", fresh[2].User.Name)
}

func TestStaffing_GetUserUtilization(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	staffing := NewStaffingUsecase(repos, nil, nil)

	p := seedProject(t, repos, "Apollo")
	role := seedRole(t, repos, p.ID, 3)
	u := seedUser(t, repos, "Busy Bee")
	seedAssignment(t, repos, role, u.ID, 60, project.AssignmentActive)
	seedAssignment(t, repos, role, u.ID, 50, project.AssignmentActive)
	seedAssignment(t, repos, role, u.ID, 40, project.AssignmentProposed)

	sum, err := staffing.GetUserUtilization(ctx, u.ID, utilization.Window{})
	require.NoError(t, err)
	assert.Equal(t, 110, sum.TotalUtilization)
	assert.Equal(t, utilization.LevelOver, sum.Level)
	require.Len(t, sum.Assignments, 2)
	assert.Equal(t, "Apollo", sum.Assignments[0].ProjectName)

	future := utilization.Window{Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	sum, err = staffing.GetUserUtilization(ctx, u.ID, future)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalUtilization)
	assert.Empty(t, sum.Assignments)

	_, err = staffing.GetUserUtilization(ctx, uuid.New(), utilization.Window{})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = staffing.GetUserUtilization(ctx, u.ID, utilization.Window{Start: dec31, End: jan1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
