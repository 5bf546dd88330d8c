package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventStaffingUpdated = "staffing_updated"

type StaffingUpdatedEvent struct {
	Type         string    `json:"type"`
	ProjectID    uuid.UUID `json:"project_id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	Action       string    `json:"action"`
	Timestamp    string    `json:"timestamp"`
}

// NotifyStaffingUpdated broadcasts an assignment change to every connected
// client.
func (h *Hub) NotifyStaffingUpdated(projectID, assignmentID uuid.UUID, action string) {
	if h == nil {
		return
	}
	evt := StaffingUpdatedEvent{
		Type:         EventStaffingUpdated,
		ProjectID:    projectID,
		AssignmentID: assignmentID,
		Action:       action,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws event encode failed", zap.Error(err))
		return
	}
	h.Broadcast(b)
}
