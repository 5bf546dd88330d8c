package usecase

import (
	"context"
	"testing"
	"time"

	"skillforge/internal/domain/contract"
	"skillforge/internal/domain/health"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactService_CRUD(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	contracts := NewContractUsecases(repos, nil)
	p := seedProject(t, repos, "Apollo")

	_, err := contracts.SOWs.Create(ctx, p.ID, contract.SOW{Status: contract.SOWDraft})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = contracts.SOWs.Create(ctx, uuid.New(), contract.SOW{Title: "Phase 1", Status: contract.SOWDraft})
	assert.ErrorIs(t, err, ErrProjectNotFound)

	spoofed := uuid.New()
	sow, err := contracts.SOWs.Create(ctx, p.ID, contract.SOW{ID: spoofed, Title: "Phase 1", Status: contract.SOWDraft, Deliverables: []string{"MVP"}})
	require.NoError(t, err)
	assert.NotEqual(t, spoofed, sow.ID)
	assert.Equal(t, p.ID, sow.ProjectID)

	sow.Status = contract.SOWActive
	updated, err := contracts.SOWs.Update(ctx, p.ID, sow.ID, sow)
	require.NoError(t, err)
	assert.Equal(t, contract.SOWActive, updated.Status)

	got, err := contracts.SOWs.Get(ctx, p.ID, sow.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"MVP"}, got.Deliverables)

	_, err = contracts.SOWs.Update(ctx, p.ID, uuid.New(), sow)
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	require.NoError(t, contracts.SOWs.Delete(ctx, p.ID, sow.ID))
	_, err = contracts.SOWs.Get(ctx, p.ID, sow.ID)
	assert.ErrorIs(t, err, ErrArtifactNotFound)
	assert.Equal(t, contract.KindSOW, contracts.SOWs.Kind())
}

func TestArtifactService_ScopedToProject(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	contracts := NewContractUsecases(repos, nil)
	a := seedProject(t, repos, "Apollo")
	b := seedProject(t, repos, "Gemini")

	risk, err := contracts.Risks.Create(ctx, a.ID, contract.Risk{
		Title:       "Vendor delay",
		Severity:    contract.SeverityHigh,
		Probability: contract.ProbabilityMedium,
		Status:      contract.RiskIdentified,
	})
	require.NoError(t, err)

	_, err = contracts.Risks.Get(ctx, b.ID, risk.ID)
	assert.ErrorIs(t, err, ErrArtifactNotFound)
	assert.ErrorIs(t, contracts.Risks.Delete(ctx, b.ID, risk.ID), ErrArtifactNotFound)

	list, err := contracts.Risks.List(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHealth_GetProjectHealth(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	contracts := NewContractUsecases(repos, nil)
	healthUC := NewHealthUsecase(repos, nil)
	p := seedProject(t, repos, "Apollo")
	seedRole(t, repos, p.ID, 2)

	_, err := contracts.Risks.Create(ctx, p.ID, contract.Risk{
		Title:       "Key person leaves",
		Severity:    contract.SeverityCritical,
		Probability: contract.ProbabilityHigh,
		Status:      contract.RiskMitigating,
	})
	require.NoError(t, err)
	_, err = contracts.Dependencies.Create(ctx, p.ID, contract.Dependency{
		Title:  "Client API access",
		Type:   contract.DependencyExternal,
		Status: contract.DependencyBlocked,
	})
	require.NoError(t, err)

	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	report, err := healthUC.GetProjectHealth(ctx, p.ID, asOf)
	require.NoError(t, err)
	assert.Equal(t, p.ID, report.ProjectID)
	assert.Equal(t, asOf, report.AsOf)
	assert.Equal(t, health.Critical, report.Overall)
	assert.Equal(t, health.Critical, report.Team)
	assert.Equal(t, health.Critical, report.Risk)
	assert.Equal(t, health.Critical, report.Dependencies)
	assert.Equal(t, 2, report.Stats.RequiredHeadcount)
	assert.Equal(t, 1, report.Stats.OpenRisks)
	assert.Equal(t, 1, report.Stats.BlockedDependencies)

	_, err = healthUC.GetProjectHealth(ctx, uuid.New(), asOf)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
