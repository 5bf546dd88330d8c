package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"skillforge/internal/app"
	"skillforge/internal/config"
	"skillforge/internal/database/seeder"
	"skillforge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededOpener(ctx context.Context) (*app.Container, error) {
	return app.NewContainer(ctx, config.Config{
		JWT: config.JWTConfig{
			AccessSecret:     "a",
			RefreshSecret:    "r",
			AccessExpiresIn:  time.Minute,
			RefreshExpiresIn: time.Hour,
		},
		Seed: config.SeedConfig{DemoData: true, Password: "password123"},
	}, nil)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(seededOpener)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMatch(t *testing.T) {
	out, err := run(t, "match", "--role", seeder.ID("role-1").String(), "--json")
	require.NoError(t, err)

	var cs []usecase.Candidate
	require.NoError(t, json.Unmarshal([]byte(out), &cs))
	require.Len(t, cs, 5)
	assert.Equal(t, "John Smith", cs[0].User.Name)

	out, err = run(t, "match", "--role", seeder.ID("role-1").String(), "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "MATCH")
}

func TestMatch_Errors(t *testing.T) {
	_, err := run(t, "match")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, err = run(t, "match", "--role", seeder.ID("no-such-role").String())
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestUtilization(t *testing.T) {
	out, err := run(t, "utilization", "--user", seeder.ID("user-1").String(), "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_utilization": 100`)

	_, err = run(t, "utilization", "--user", seeder.ID("user-1").String(), "--start", "not-a-date")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestHealth(t *testing.T) {
	out, err := run(t, "health", "--project", seeder.ID("proj-1").String(), "--as-of", "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall:")
	assert.Contains(t, out, "Risk:")
}

func TestTaxonomySearch(t *testing.T) {
	out, err := run(t, "taxonomy", "search", "k8s")
	require.NoError(t, err)
	assert.Contains(t, out, "Kubernetes")

	_, err = run(t, "taxonomy", "search", "k8s", "--limit=-1")
	require.Error(t, err)
	assert.Equal(t, ExitValidation, ExitCode(err))
}

func TestExportRoster(t *testing.T) {
	out, err := run(t, "export-roster")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")

	dir := t.TempDir()
	out, err = run(t, "export-roster", "--dir", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Roster written to "))

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	b, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), "John Smith")
}
