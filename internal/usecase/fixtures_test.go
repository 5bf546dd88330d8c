package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/repository"
	"skillforge/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]any
	reads   int
	purges  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]any{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	v, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if dst, ok := out.(*[]Candidate); ok {
		*dst = append([]Candidate(nil), v.([]Candidate)...)
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purges++
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

type notification struct {
	projectID    uuid.UUID
	assignmentID uuid.UUID
	action       string
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (n *fakeNotifier) NotifyStaffingUpdated(projectID, assignmentID uuid.UUID, action string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification{projectID, assignmentID, action})
}

var (
	jan1  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dec31 = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func seedUser(t *testing.T, repos repository.Repositories, name string, skills ...skill.Skill) user.User {
	t.Helper()
	u, err := repos.Users.Create(context.Background(), user.User{
		ID:     uuid.New(),
		Name:   name,
		Email:  strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Status: user.StatusActive,
	})
	require.NoError(t, err)
	for _, s := range skills {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		_, err := repos.Users.AddSkill(context.Background(), u.ID, s)
		require.NoError(t, err)
	}
	got, err := repos.Users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	return got
}

func seedProject(t *testing.T, repos repository.Repositories, name string) project.Project {
	t.Helper()
	p, err := repos.Projects.Create(context.Background(), project.Project{
		ID:        uuid.New(),
		Name:      name,
		StartDate: jan1,
		EndDate:   dec31,
		Status:    project.StatusActive,
		OwnerID:   uuid.New(),
	})
	require.NoError(t, err)
	return p
}

func seedRole(t *testing.T, repos repository.Repositories, projectID uuid.UUID, count int, reqs ...project.SkillRequirement) project.Role {
	t.Helper()
	r, err := repos.Roles.Create(context.Background(), project.Role{
		ID:             uuid.New(),
		ProjectID:      projectID,
		Title:          "Engineer",
		Count:          count,
		RequiredSkills: reqs,
	})
	require.NoError(t, err)
	return r
}

func seedAssignment(t *testing.T, repos repository.Repositories, role project.Role, userID uuid.UUID, pct int, status project.AssignmentStatus) project.Assignment {
	t.Helper()
	a, err := repos.Assignments.Create(context.Background(), project.Assignment{
		ID:                uuid.New(),
		ProjectID:         role.ProjectID,
		UserID:            userID,
		RoleID:            role.ID,
		RoleTitle:         role.Title,
		AllocationPercent: pct,
		StartDate:         jan1,
		EndDate:           dec31,
		Status:            status,
		BookingType:       project.BookingHard,
	})
	require.NoError(t, err)
	return a
}

func reactSkill(level skill.ProficiencyLevel) skill.Skill {
	return skill.Skill{Name: "React", Category: "Application Development", Subcategory: "Frontend Frameworks", Proficiency: level}
}

func reactReq(level skill.ProficiencyLevel) project.SkillRequirement {
	return project.SkillRequirement{SkillName: "React", Category: "Application Development", Subcategory: "Frontend Frameworks", MinProficiency: level}
}

func newRepos() repository.Repositories {
	return memory.New()
}
