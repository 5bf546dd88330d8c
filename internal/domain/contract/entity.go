package contract

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSOW           Kind = "sow"
	KindChangeRequest Kind = "change_request"
	KindRisk          Kind = "risk"
	KindDependency    Kind = "dependency"
	KindDocument      Kind = "document"
)

type SOWStatus string

const (
	SOWDraft       SOWStatus = "Draft"
	SOWUnderReview SOWStatus = "Under Review"
	SOWApproved    SOWStatus = "Approved"
	SOWActive      SOWStatus = "Active"
	SOWCompleted   SOWStatus = "Completed"
	SOWCancelled   SOWStatus = "Cancelled"
)

type ChangeRequestStatus string

const (
	CRSubmitted   ChangeRequestStatus = "Submitted"
	CRUnderReview ChangeRequestStatus = "Under Review"
	CRApproved    ChangeRequestStatus = "Approved"
	CRRejected    ChangeRequestStatus = "Rejected"
	CRImplemented ChangeRequestStatus = "Implemented"
)

type ChangeRequestType string

const (
	CRScopeChange       ChangeRequestType = "Scope Change"
	CRTimelineExtension ChangeRequestType = "Timeline Extension"
	CRBudgetAdjustment  ChangeRequestType = "Budget Adjustment"
	CRResourceChange    ChangeRequestType = "Resource Change"
	CRTechnicalChange   ChangeRequestType = "Technical Change"
)

type RiskStatus string

const (
	RiskIdentified RiskStatus = "Identified"
	RiskAnalyzing  RiskStatus = "Analyzing"
	RiskMitigating RiskStatus = "Mitigating"
	RiskMonitoring RiskStatus = "Monitoring"
	RiskClosed     RiskStatus = "Closed"
)

type RiskSeverity string

const (
	SeverityCritical RiskSeverity = "Critical"
	SeverityHigh     RiskSeverity = "High"
	SeverityMedium   RiskSeverity = "Medium"
	SeverityLow      RiskSeverity = "Low"
)

type RiskProbability string

const (
	ProbabilityVeryHigh RiskProbability = "Very High"
	ProbabilityHigh     RiskProbability = "High"
	ProbabilityMedium   RiskProbability = "Medium"
	ProbabilityLow      RiskProbability = "Low"
	ProbabilityVeryLow  RiskProbability = "Very Low"
)

type DependencyType string

const (
	DependencyInternal  DependencyType = "Internal"
	DependencyExternal  DependencyType = "External"
	DependencyTechnical DependencyType = "Technical"
	DependencyResource  DependencyType = "Resource"
	DependencyVendor    DependencyType = "Vendor"
)

type DependencyStatus string

const (
	DependencyPending    DependencyStatus = "Pending"
	DependencyInProgress DependencyStatus = "In Progress"
	DependencyBlocked    DependencyStatus = "Blocked"
	DependencyResolved   DependencyStatus = "Resolved"
	DependencyCancelled  DependencyStatus = "Cancelled"
)

type DocumentType string

const (
	DocumentContract      DocumentType = "Contract"
	DocumentProposal      DocumentType = "Proposal"
	DocumentSpecification DocumentType = "Specification"
	DocumentDesign        DocumentType = "Design"
	DocumentReport        DocumentType = "Report"
	DocumentMeetingNotes  DocumentType = "Meeting Notes"
	DocumentOther         DocumentType = "Other"
)

type DocumentStatus string

const (
	DocumentDraft       DocumentStatus = "Draft"
	DocumentUnderReview DocumentStatus = "Under Review"
	DocumentApproved    DocumentStatus = "Approved"
	DocumentArchived    DocumentStatus = "Archived"
)

type Milestone struct {
	Name      string    `json:"name"`
	DueDate   time.Time `json:"due_date"`
	Payment   float64   `json:"payment"`
	Completed bool      `json:"completed"`
}

type SOW struct {
	ID           uuid.UUID   `json:"id"`
	ProjectID    uuid.UUID   `json:"project_id"`
	Title        string      `json:"title"`
	Version      string      `json:"version"`
	Status       SOWStatus   `json:"status"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	TotalValue   float64     `json:"total_value"`
	Currency     string      `json:"currency"`
	Scope        string      `json:"scope"`
	Deliverables []string    `json:"deliverables"`
	Milestones   []Milestone `json:"milestones"`
	CreatedDate  time.Time   `json:"created_date"`
	ApprovedDate *time.Time  `json:"approved_date,omitempty"`
	ApprovedBy   string      `json:"approved_by,omitempty"`
	DocumentURL  string      `json:"document_url,omitempty"`
}

type ImpactAnalysis struct {
	Scope     string   `json:"scope,omitempty"`
	Timeline  string   `json:"timeline,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
	Resources string   `json:"resources,omitempty"`
}

type Comment struct {
	Author string    `json:"author"`
	Date   time.Time `json:"date"`
	Text   string    `json:"text"`
}

type ChangeRequest struct {
	ID                    uuid.UUID           `json:"id"`
	ProjectID             uuid.UUID           `json:"project_id"`
	SOWID                 uuid.UUID           `json:"sow_id"`
	Title                 string              `json:"title"`
	Type                  ChangeRequestType   `json:"type"`
	Status                ChangeRequestStatus `json:"status"`
	Description           string              `json:"description"`
	BusinessJustification string              `json:"business_justification"`
	ImpactAnalysis        ImpactAnalysis      `json:"impact_analysis"`
	RequestedBy           string              `json:"requested_by"`
	RequestedDate         time.Time           `json:"requested_date"`
	ReviewedBy            string              `json:"reviewed_by,omitempty"`
	ReviewedDate          *time.Time          `json:"reviewed_date,omitempty"`
	ApprovedBy            string              `json:"approved_by,omitempty"`
	ApprovedDate          *time.Time          `json:"approved_date,omitempty"`
	ImplementedDate       *time.Time          `json:"implemented_date,omitempty"`
	Comments              []Comment           `json:"comments"`
}

func (c ChangeRequest) Pending() bool {
	return c.Status == CRSubmitted || c.Status == CRUnderReview
}

type Risk struct {
	ID                   uuid.UUID       `json:"id"`
	ProjectID            uuid.UUID       `json:"project_id"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Category             string          `json:"category"`
	Severity             RiskSeverity    `json:"severity"`
	Probability          RiskProbability `json:"probability"`
	Status               RiskStatus      `json:"status"`
	Impact               string          `json:"impact"`
	MitigationPlan       string          `json:"mitigation_plan"`
	ContingencyPlan      string          `json:"contingency_plan,omitempty"`
	Owner                string          `json:"owner"`
	IdentifiedDate       time.Time       `json:"identified_date"`
	TargetResolutionDate *time.Time      `json:"target_resolution_date,omitempty"`
	ClosedDate           *time.Time      `json:"closed_date,omitempty"`
	LastUpdated          time.Time       `json:"last_updated"`
}

func (r Risk) Open() bool {
	return r.Status != RiskClosed
}

type Dependency struct {
	ID             uuid.UUID        `json:"id"`
	ProjectID      uuid.UUID        `json:"project_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Type           DependencyType   `json:"type"`
	Status         DependencyStatus `json:"status"`
	DependsOn      string           `json:"depends_on"`
	DependentParty string           `json:"dependent_party"`
	RequiredDate   time.Time        `json:"required_date"`
	ExpectedDate   *time.Time       `json:"expected_date,omitempty"`
	ActualDate     *time.Time       `json:"actual_date,omitempty"`
	Impact         string           `json:"impact"`
	Owner          string           `json:"owner"`
	Notes          string           `json:"notes,omitempty"`
	CreatedDate    time.Time        `json:"created_date"`
	LastUpdated    time.Time        `json:"last_updated"`
}

func (d Dependency) Unresolved() bool {
	return d.Status == DependencyPending || d.Status == DependencyInProgress
}

type Document struct {
	ID           uuid.UUID      `json:"id"`
	ProjectID    uuid.UUID      `json:"project_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Type         DocumentType   `json:"type"`
	Status       DocumentStatus `json:"status"`
	FileName     string         `json:"file_name"`
	FileSize     int64          `json:"file_size"`
	FileURL      string         `json:"file_url"`
	UploadedBy   string         `json:"uploaded_by"`
	UploadedDate time.Time      `json:"uploaded_date"`
	Version      string         `json:"version"`
	Tags         []string       `json:"tags,omitempty"`
	LastModified time.Time      `json:"last_modified"`
}
