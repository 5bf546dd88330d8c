package utilization

import (
	"time"

	"skillforge/internal/domain/project"

	"github.com/google/uuid"
)

const UnknownProject = "Unknown Project"

type Level string

const (
	LevelAvailable Level = "available"
	LevelFull      Level = "full"
	LevelOver      Level = "over"
)

func LevelFor(total int) Level {
	switch {
	case total < 80:
		return LevelAvailable
	case total <= 100:
		return LevelFull
	default:
		return LevelOver
	}
}

// Window bounds the assignments considered. Zero times are open ends.
type Window struct {
	Start time.Time
	End   time.Time
}

type Entry struct {
	AssignmentID      uuid.UUID `json:"assignment_id"`
	ProjectID         uuid.UUID `json:"project_id"`
	ProjectName       string    `json:"project_name"`
	RoleTitle         string    `json:"role_title"`
	AllocationPercent int       `json:"allocation_percent"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
}

type Summary struct {
	UserID           uuid.UUID `json:"user_id"`
	TotalUtilization int       `json:"total_utilization"`
	Level            Level     `json:"level"`
	Assignments      []Entry   `json:"assignments"`
}

// Aggregate sums the allocation of the user's Active assignments that fall in
// the window. projectNames resolves project ids to names.
func Aggregate(userID uuid.UUID, assignments []project.Assignment, projectNames map[uuid.UUID]string, w Window) Summary {
	out := Summary{UserID: userID, Assignments: []Entry{}}
	for _, a := range assignments {
		if a.UserID != userID || a.Status != project.AssignmentActive {
			continue
		}
		if !a.Overlaps(w.Start, w.End) {
			continue
		}

		name, ok := projectNames[a.ProjectID]
		if !ok {
			name = UnknownProject
		}
		out.TotalUtilization += a.AllocationPercent
		out.Assignments = append(out.Assignments, Entry{
			AssignmentID:      a.ID,
			ProjectID:         a.ProjectID,
			ProjectName:       name,
			RoleTitle:         a.RoleTitle,
			AllocationPercent: a.AllocationPercent,
			StartDate:         a.StartDate,
			EndDate:           a.EndDate,
		})
	}
	out.Level = LevelFor(out.TotalUtilization)
	return out
}
