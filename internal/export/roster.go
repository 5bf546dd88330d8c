// Package export renders the resource roster as CSV.
package export

import (
	"bytes"
	"strings"
	"time"

	"skillforge/internal/domain/user"
)

var rosterHeader = []string{"Name", "Email", "Title", "Department", "Location", "Status"}

// RosterCSV writes one row per user under a bare header line. Every data
// field is quoted, including empty ones, which encoding/csv does not do.
// Lines are joined with '\n' and the last one has no terminator. Users
// without a title fall back to their role.
func RosterCSV(users []user.User) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(rosterHeader, ","))
	for _, u := range users {
		title := u.Title
		if title == "" {
			title = u.Role
		}
		status := u.Status
		if status == "" {
			status = user.StatusActive
		}
		buf.WriteByte('\n')
		writeRow(&buf, []string{u.Name, u.Email, title, u.Department, u.Location, string(status)})
	}
	return buf.Bytes()
}

func RosterFileName(now time.Time) string {
	return "resources-roster-" + now.Format("2006-01-02") + ".csv"
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
}
