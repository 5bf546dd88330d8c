package seeder

import (
	"context"
	"testing"

	"skillforge/internal/domain/group"
	"skillforge/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_SeedsDemoDataOnce(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	r := Runner{Seeders: Defaults("hash")}

	require.NoError(t, r.Run(ctx, repos))

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(demoUsers))

	jane, err := repos.Users.GetByID(ctx, ID("user-1"))
	require.NoError(t, err)
	assert.True(t, jane.IsAdmin)
	assert.Equal(t, "hash", jane.PasswordHash)
	assert.Len(t, jane.Skills, 6)

	roles, err := repos.Roles.ListByProject(ctx, ID("proj-1"))
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	gs, err := repos.Groups.List(ctx)
	require.NoError(t, err)
	assert.Len(t, group.BuildTree(gs), 5)

	fin, err := repos.Financials.GetFinancials(ctx, ID("user-3"))
	require.NoError(t, err)
	require.NotNil(t, fin.PaybandID)
	assert.Equal(t, ID("payband-L4"), *fin.PaybandID)

	require.NoError(t, r.Run(ctx, repos))
	users, err = repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(demoUsers))
}

func TestID_IsStable(t *testing.T) {
	assert.Equal(t, ID("user-1"), ID("user-1"))
	assert.NotEqual(t, ID("user-1"), ID("user-2"))
}
