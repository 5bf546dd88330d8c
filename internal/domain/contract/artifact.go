package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidArtifact = errors.New("invalid artifact")

// Artifact is implemented by every project-scoped contract record so that a
// single store and service can handle all five kinds.
type Artifact[T any] interface {
	Identity() (id uuid.UUID, projectID uuid.UUID)
	WithIdentity(id uuid.UUID, projectID uuid.UUID) T
	Validate() error
	// Clone returns a copy that shares no slices with the receiver.
	Clone() T
}

func cloneSlice[E any](in []E) []E {
	if in == nil {
		return nil
	}
	out := make([]E, len(in))
	copy(out, in)
	return out
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArtifact, fmt.Sprintf(format, args...))
}

func (s SOW) Identity() (uuid.UUID, uuid.UUID) { return s.ID, s.ProjectID }

func (s SOW) WithIdentity(id, projectID uuid.UUID) SOW {
	s.ID, s.ProjectID = id, projectID
	return s
}

func (s SOW) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return invalid("title is required")
	}
	switch s.Status {
	case SOWDraft, SOWUnderReview, SOWApproved, SOWActive, SOWCompleted, SOWCancelled:
	default:
		return invalid("unknown sow status %q", s.Status)
	}
	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && s.EndDate.Before(s.StartDate) {
		return invalid("end_date before start_date")
	}
	if s.TotalValue < 0 {
		return invalid("total_value must not be negative")
	}
	return nil
}

func (s SOW) Clone() SOW {
	s.Deliverables = cloneSlice(s.Deliverables)
	s.Milestones = cloneSlice(s.Milestones)
	return s
}

// Live reports whether the SOW is still being delivered against.
func (s SOW) Live() bool {
	return s.Status != SOWCancelled && s.Status != SOWCompleted
}

func (c ChangeRequest) Identity() (uuid.UUID, uuid.UUID) { return c.ID, c.ProjectID }

func (c ChangeRequest) WithIdentity(id, projectID uuid.UUID) ChangeRequest {
	c.ID, c.ProjectID = id, projectID
	return c
}

func (c ChangeRequest) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return invalid("title is required")
	}
	switch c.Status {
	case CRSubmitted, CRUnderReview, CRApproved, CRRejected, CRImplemented:
	default:
		return invalid("unknown change request status %q", c.Status)
	}
	switch c.Type {
	case CRScopeChange, CRTimelineExtension, CRBudgetAdjustment, CRResourceChange, CRTechnicalChange:
	default:
		return invalid("unknown change request type %q", c.Type)
	}
	return nil
}

func (c ChangeRequest) Clone() ChangeRequest {
	c.Comments = cloneSlice(c.Comments)
	return c
}

func (r Risk) Identity() (uuid.UUID, uuid.UUID) { return r.ID, r.ProjectID }

func (r Risk) WithIdentity(id, projectID uuid.UUID) Risk {
	r.ID, r.ProjectID = id, projectID
	return r
}

func (r Risk) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid("title is required")
	}
	switch r.Severity {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
	default:
		return invalid("unknown severity %q", r.Severity)
	}
	switch r.Probability {
	case ProbabilityVeryHigh, ProbabilityHigh, ProbabilityMedium, ProbabilityLow, ProbabilityVeryLow:
	default:
		return invalid("unknown probability %q", r.Probability)
	}
	switch r.Status {
	case RiskIdentified, RiskAnalyzing, RiskMitigating, RiskMonitoring, RiskClosed:
	default:
		return invalid("unknown risk status %q", r.Status)
	}
	return nil
}

func (r Risk) Clone() Risk { return r }

func (d Dependency) Identity() (uuid.UUID, uuid.UUID) { return d.ID, d.ProjectID }

func (d Dependency) WithIdentity(id, projectID uuid.UUID) Dependency {
	d.ID, d.ProjectID = id, projectID
	return d
}

func (d Dependency) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return invalid("title is required")
	}
	switch d.Type {
	case DependencyInternal, DependencyExternal, DependencyTechnical, DependencyResource, DependencyVendor:
	default:
		return invalid("unknown dependency type %q", d.Type)
	}
	switch d.Status {
	case DependencyPending, DependencyInProgress, DependencyBlocked, DependencyResolved, DependencyCancelled:
	default:
		return invalid("unknown dependency status %q", d.Status)
	}
	return nil
}

func (d Dependency) Clone() Dependency { return d }

func (d Document) Identity() (uuid.UUID, uuid.UUID) { return d.ID, d.ProjectID }

func (d Document) WithIdentity(id, projectID uuid.UUID) Document {
	d.ID, d.ProjectID = id, projectID
	return d
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return invalid("title is required")
	}
	switch d.Type {
	case DocumentContract, DocumentProposal, DocumentSpecification, DocumentDesign, DocumentReport, DocumentMeetingNotes, DocumentOther:
	default:
		return invalid("unknown document type %q", d.Type)
	}
	switch d.Status {
	case DocumentDraft, DocumentUnderReview, DocumentApproved, DocumentArchived:
	default:
		return invalid("unknown document status %q", d.Status)
	}
	if d.FileSize < 0 {
		return invalid("file_size must not be negative")
	}
	return nil
}

func (d Document) Clone() Document {
	d.Tags = cloneSlice(d.Tags)
	return d
}
