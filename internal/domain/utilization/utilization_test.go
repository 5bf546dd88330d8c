package utilization

import (
	"testing"
	"time"

	"skillforge/internal/domain/project"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate_OnlyActiveAssignmentsCount(t *testing.T) {
	uid := uuid.New()
	p1 := uuid.New()
	p2 := uuid.New()
	assignments := []project.Assignment{
		{ID: uuid.New(), UserID: uid, ProjectID: p1, AllocationPercent: 60, Status: project.AssignmentActive},
		{ID: uuid.New(), UserID: uid, ProjectID: p2, AllocationPercent: 50, Status: project.AssignmentProposed},
		{ID: uuid.New(), UserID: uuid.New(), ProjectID: p1, AllocationPercent: 100, Status: project.AssignmentActive},
	}

	sum := Aggregate(uid, assignments, map[uuid.UUID]string{p1: "Digital Banking"}, Window{})

	assert.Equal(t, 60, sum.TotalUtilization)
	assert.Equal(t, LevelAvailable, sum.Level)
	require.Len(t, sum.Assignments, 1)
	assert.Equal(t, "Digital Banking", sum.Assignments[0].ProjectName)
}

func TestAggregate_MissingProjectIsUnknown(t *testing.T) {
	uid := uuid.New()
	assignments := []project.Assignment{
		{ID: uuid.New(), UserID: uid, ProjectID: uuid.New(), AllocationPercent: 70, Status: project.AssignmentActive},
		{ID: uuid.New(), UserID: uid, ProjectID: uuid.New(), AllocationPercent: 50, Status: project.AssignmentActive},
	}

	sum := Aggregate(uid, assignments, nil, Window{})

	assert.Equal(t, 120, sum.TotalUtilization)
	assert.Equal(t, LevelOver, sum.Level)
	for _, e := range sum.Assignments {
		assert.Equal(t, UnknownProject, e.ProjectName)
	}
}

func TestAggregate_NoAssignments(t *testing.T) {
	sum := Aggregate(uuid.New(), nil, nil, Window{})

	assert.Equal(t, 0, sum.TotalUtilization)
	assert.NotNil(t, sum.Assignments)
	assert.Empty(t, sum.Assignments)
}

func TestAggregate_WindowFiltersByOverlap(t *testing.T) {
	uid := uuid.New()
	pid := uuid.New()
	assignments := []project.Assignment{
		{ID: uuid.New(), UserID: uid, ProjectID: pid, AllocationPercent: 50, Status: project.AssignmentActive,
			StartDate: day("2024-01-01"), EndDate: day("2024-03-31")},
		{ID: uuid.New(), UserID: uid, ProjectID: pid, AllocationPercent: 40, Status: project.AssignmentActive,
			StartDate: day("2024-06-01"), EndDate: day("2024-12-31")},
	}

	sum := Aggregate(uid, assignments, nil, Window{Start: day("2024-03-01"), End: day("2024-04-30")})
	assert.Equal(t, 50, sum.TotalUtilization)

	sum = Aggregate(uid, assignments, nil, Window{Start: day("2024-05-01")})
	assert.Equal(t, 40, sum.TotalUtilization)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelAvailable, LevelFor(79))
	assert.Equal(t, LevelFull, LevelFor(80))
	assert.Equal(t, LevelFull, LevelFor(100))
	assert.Equal(t, LevelOver, LevelFor(101))
}
