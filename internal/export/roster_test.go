package export

import (
	"testing"
	"time"

	"skillforge/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestRosterCSV(t *testing.T) {
	out := RosterCSV([]user.User{
		{Name: "Sarah Connor", Email: "sarah@example.com", Title: "Lead \"Ops\"", Department: "Engineering", Location: "LA, CA", Status: user.StatusActive},
		{Name: "Kyle Reese", Email: "kyle@example.com", Role: "Consultant", Status: user.StatusInactive},
		{Name: "John Connor", Email: "john@example.com"},
	})

	want := "Name,Email,Title,Department,Location,Status\n" +
		`"Sarah Connor","sarah@example.com","Lead ""Ops""","Engineering","LA, CA","Active"` + "\n" +
		`"Kyle Reese","kyle@example.com","Consultant","","","Inactive"` + "\n" +
		`"John Connor","john@example.com","","","","Active"`
	assert.Equal(t, want, string(out))
}

func TestRosterCSV_Empty(t *testing.T) {
	assert.Equal(t, "Name,Email,Title,Department,Location,Status", string(RosterCSV(nil)))
}

func TestRosterFileName(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "resources-roster-2024-03-07.csv", RosterFileName(now))
}
