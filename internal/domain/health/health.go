package health

import (
	"time"

	"skillforge/internal/domain/contract"
	"skillforge/internal/domain/project"
)

type Status string

const (
	Good     Status = "good"
	Warning  Status = "warning"
	Critical Status = "critical"
)

const (
	goodFillRatio    = 0.8
	warningFillRatio = 0.5

	maxPendingChangeRequests = 2
	maxWarningFacets         = 2
)

type Input struct {
	Roles          []project.Role
	Assignments    []project.Assignment
	SOWs           []contract.SOW
	ChangeRequests []contract.ChangeRequest
	Risks          []contract.Risk
	Dependencies   []contract.Dependency
	Documents      []contract.Document
	AsOf           time.Time
}

type Stats struct {
	RequiredHeadcount     int     `json:"required_headcount"`
	FilledHeadcount       int     `json:"filled_headcount"`
	AverageAllocation     float64 `json:"average_allocation"`
	OpenRisks             int     `json:"open_risks"`
	BlockedDependencies   int     `json:"blocked_dependencies"`
	PendingChangeRequests int     `json:"pending_change_requests"`
}

type Report struct {
	Overall      Status `json:"overall"`
	Team         Status `json:"team"`
	Contracts    Status `json:"contracts"`
	Risk         Status `json:"risk"`
	Dependencies Status `json:"dependencies"`
	Documents    Status `json:"documents"`
	Stats        Stats  `json:"stats"`
}

// Evaluate derives the health facets of one project. It is a pure function
// of its input.
func Evaluate(in Input) Report {
	r := Report{
		Team:         team(in),
		Contracts:    contracts(in),
		Risk:         risk(in.Risks),
		Dependencies: dependencies(in.Dependencies, in.AsOf),
		Documents:    documents(in.Documents),
		Stats:        stats(in),
	}
	r.Overall = overall(r.Team, r.Contracts, r.Risk, r.Dependencies, r.Documents)
	return r
}

func team(in Input) Status {
	required := requiredHeadcount(in.Roles)
	if required == 0 {
		return Good
	}
	ratio := float64(filledHeadcount(in.Assignments)) / float64(required)
	switch {
	case ratio >= goodFillRatio:
		return Good
	case ratio >= warningFillRatio:
		return Warning
	default:
		return Critical
	}
}

func contracts(in Input) Status {
	if len(in.SOWs) == 0 {
		if len(in.Roles) == 0 {
			return Good
		}
		return Warning
	}

	cancelled := 0
	overdue := false
	for _, s := range in.SOWs {
		if s.Status == contract.SOWCancelled {
			cancelled++
			continue
		}
		if !s.Live() {
			continue
		}
		for _, m := range s.Milestones {
			if !m.Completed && !m.DueDate.IsZero() && m.DueDate.Before(in.AsOf) {
				overdue = true
			}
		}
	}
	if cancelled == len(in.SOWs) {
		return Critical
	}
	if overdue || pendingChangeRequests(in.ChangeRequests) > maxPendingChangeRequests {
		return Warning
	}
	return Good
}

func risk(risks []contract.Risk) Status {
	out := Good
	for _, r := range risks {
		if !r.Open() {
			continue
		}
		switch r.Severity {
		case contract.SeverityCritical:
			return Critical
		case contract.SeverityHigh:
			out = Warning
		}
	}
	return out
}

func dependencies(deps []contract.Dependency, asOf time.Time) Status {
	out := Good
	for _, d := range deps {
		if d.Status == contract.DependencyBlocked {
			return Critical
		}
		if d.Unresolved() && !d.RequiredDate.IsZero() && d.RequiredDate.Before(asOf) {
			out = Warning
		}
	}
	return out
}

func documents(docs []contract.Document) Status {
	if len(docs) == 0 {
		return Good
	}
	for _, d := range docs {
		if d.Status == contract.DocumentApproved {
			return Good
		}
	}
	return Warning
}

func overall(facets ...Status) Status {
	warnings := 0
	for _, f := range facets {
		if f == Critical {
			return Critical
		}
		if f == Warning {
			warnings++
		}
	}
	if warnings > maxWarningFacets {
		return Warning
	}
	return Good
}

func stats(in Input) Stats {
	s := Stats{
		RequiredHeadcount:     requiredHeadcount(in.Roles),
		FilledHeadcount:       filledHeadcount(in.Assignments),
		PendingChangeRequests: pendingChangeRequests(in.ChangeRequests),
	}

	total := 0
	for _, a := range in.Assignments {
		if a.Status == project.AssignmentActive {
			total += a.AllocationPercent
		}
	}
	if s.FilledHeadcount > 0 {
		s.AverageAllocation = float64(total) / float64(s.FilledHeadcount)
	}

	for _, r := range in.Risks {
		if r.Open() {
			s.OpenRisks++
		}
	}
	for _, d := range in.Dependencies {
		if d.Status == contract.DependencyBlocked {
			s.BlockedDependencies++
		}
	}
	return s
}

func requiredHeadcount(roles []project.Role) int {
	n := 0
	for _, r := range roles {
		n += r.Count
	}
	return n
}

func filledHeadcount(assignments []project.Assignment) int {
	n := 0
	for _, a := range assignments {
		if a.Status == project.AssignmentActive {
			n++
		}
	}
	return n
}

func pendingChangeRequests(crs []contract.ChangeRequest) int {
	n := 0
	for _, c := range crs {
		if c.Pending() {
			n++
		}
	}
	return n
}
