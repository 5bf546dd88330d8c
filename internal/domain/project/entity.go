package project

import (
	"time"

	"skillforge/internal/domain/skill"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPipeline  Status = "Pipeline"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusOnHold    Status = "On Hold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPipeline, StatusActive, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "Active"
	AssignmentProposed AssignmentStatus = "Proposed"
	AssignmentPast     AssignmentStatus = "Past"
)

func (s AssignmentStatus) Valid() bool {
	return s == AssignmentActive || s == AssignmentProposed || s == AssignmentPast
}

type BookingType string

const (
	BookingHard BookingType = "Hard"
	BookingSoft BookingType = "Soft"
)

func (b BookingType) Valid() bool {
	return b == BookingHard || b == BookingSoft
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClientName  string    `json:"client_name"`
	ProjectCode string    `json:"project_code"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Portfolio   string    `json:"portfolio,omitempty"`
}

type SkillRequirement struct {
	SkillName      string                 `json:"skill_name"`
	Category       string                 `json:"category"`
	Subcategory    string                 `json:"subcategory"`
	MinProficiency skill.ProficiencyLevel `json:"min_proficiency"`
}

type Role struct {
	ID                   uuid.UUID          `json:"id"`
	ProjectID            uuid.UUID          `json:"project_id"`
	Title                string             `json:"title"`
	Count                int                `json:"count"`
	RequiredSkills       []SkillRequirement `json:"required_skills"`
	SoftSkillPreferences []string           `json:"soft_skill_preferences,omitempty"`
	Description          string             `json:"description,omitempty"`
}

type Assignment struct {
	ID                uuid.UUID        `json:"id"`
	ProjectID         uuid.UUID        `json:"project_id"`
	UserID            uuid.UUID        `json:"user_id"`
	RoleID            uuid.UUID        `json:"role_id"`
	RoleTitle         string           `json:"role_title"`
	AllocationPercent int              `json:"allocation_percent"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           time.Time        `json:"end_date"`
	Status            AssignmentStatus `json:"status"`
	BookingType       BookingType      `json:"booking_type"`
	Notes             string           `json:"notes,omitempty"`
}

// Overlaps reports whether the assignment's date range intersects [start, end].
// A zero bound is treated as open.
func (a Assignment) Overlaps(start, end time.Time) bool {
	if !end.IsZero() && !a.StartDate.IsZero() && a.StartDate.After(end) {
		return false
	}
	if !start.IsZero() && !a.EndDate.IsZero() && a.EndDate.Before(start) {
		return false
	}
	return true
}
