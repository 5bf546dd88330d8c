package memory

import (
	"context"
	"sync"
	"testing"

	"skillforge/internal/domain/contract"
	"skillforge/internal/domain/group"
	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CopyOnRead(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u, err := repo.Create(ctx, user.User{ID: uuid.New(), Name: "Jane Doe", Email: "Jane@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)

	_, err = repo.AddSkill(ctx, u.ID, skill.Skill{ID: uuid.New(), Name: "React", Category: "Application Development", Subcategory: "Frontend Frameworks", Proficiency: 5})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got.Skills, 1)
	got.Skills[0].Proficiency = 1

	again, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, skill.ProficiencyExpert, again.Skills[0].Proficiency)
}

func TestUserRepository_DuplicateEmailAndSkill(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u, err := repo.Create(ctx, user.User{ID: uuid.New(), Email: "a@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, user.User{ID: uuid.New(), Email: "A@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	s := skill.Skill{ID: uuid.New(), Name: "Go", Category: "Application Development", Subcategory: "Languages"}
	_, err = repo.AddSkill(ctx, u.ID, s)
	require.NoError(t, err)
	s.ID = uuid.New()
	_, err = repo.AddSkill(ctx, u.ID, s)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_UpdateKeepsSkillsAndPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u, err := repo.Create(ctx, user.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	_, err = repo.AddSkill(ctx, u.ID, skill.Skill{ID: uuid.New(), Name: "Go"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, user.User{ID: u.ID, Email: "a@example.com", Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "hash", updated.PasswordHash)
	assert.Len(t, updated.Skills, 1)

	_, err = repo.Update(ctx, user.User{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssignmentRepository_DeleteByRole(t *testing.T) {
	ctx := context.Background()
	repo := NewAssignmentRepository()
	roleA, roleB := uuid.New(), uuid.New()

	for _, rid := range []uuid.UUID{roleA, roleA, roleB} {
		_, err := repo.Create(ctx, project.Assignment{ID: uuid.New(), RoleID: rid})
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteByRole(ctx, roleA))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, roleB, all[0].RoleID)
}

func TestArtifactRepository_ScopedByProject(t *testing.T) {
	ctx := context.Background()
	repo := NewArtifactRepository[contract.SOW]()
	p1, p2 := uuid.New(), uuid.New()

	sow, err := repo.Create(ctx, contract.SOW{ID: uuid.New(), ProjectID: p1, Title: "Phase 1", Deliverables: []string{"MVP"}})
	require.NoError(t, err)

	_, err = repo.Get(ctx, p2, sow.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repo.Get(ctx, p1, sow.ID)
	require.NoError(t, err)
	got.Deliverables[0] = "changed"

	list, err := repo.List(ctx, p1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "MVP", list[0].Deliverables[0])

	require.NoError(t, repo.DeleteByProject(ctx, p1))
	list, err = repo.List(ctx, p1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGroupRepository_PrimaryAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository()
	uid := uuid.New()

	g1, err := repo.Create(ctx, group.Group{ID: uuid.New(), Name: "Engineering", Type: group.TypeDepartment})
	require.NoError(t, err)
	g2, err := repo.Create(ctx, group.Group{ID: uuid.New(), Name: "Cloud Practice", Type: group.TypePractice})
	require.NoError(t, err)

	_, err = repo.AddMember(ctx, group.Membership{UserID: uid, GroupID: g1.ID, IsPrimary: true})
	require.NoError(t, err)
	_, err = repo.AddMember(ctx, group.Membership{UserID: uid, GroupID: g2.ID})
	require.NoError(t, err)

	_, err = repo.SetPrimary(ctx, uid, g2.ID, true)
	require.NoError(t, err)

	ms, err := repo.ListMembershipsByUser(ctx, uid)
	require.NoError(t, err)
	primaries := 0
	for _, m := range ms {
		if m.IsPrimary {
			primaries++
			assert.Equal(t, g2.ID, m.GroupID)
		}
	}
	assert.Equal(t, 1, primaries)

	require.NoError(t, repo.Delete(ctx, g2.ID))
	ms, err = repo.ListMembershipsByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, g1.ID, ms[0].GroupID)
}

func TestStores_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, project.Project{ID: uuid.New(), Name: "p"})
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
