package types

import "encoding/json"

// Projections rendered into tool output. Every key is always present;
// absent upstream values are rendered as null or an empty array.

// Defaults for missing optional values.
const (
	NoLocation    = "No location"
	Unassigned    = "Unassigned"
	NoPriority    = "No Priority"
	UnknownStatus = "Unknown"
)

// BoardSummary is one entry of the board listing.
type BoardSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// IssueSummary is the flattened summary view of an issue.
type IssueSummary struct {
	Key       string `json:"key"`
	Summary   string `json:"summary"`
	Status    string `json:"status"`
	Assignee  string `json:"assignee"`
	Priority  string `json:"priority"`
	IssueType string `json:"issueType"`
	Created   string `json:"created"`
	Updated   string `json:"updated"`
}

// IssueDetail is the full projection of an issue.
type IssueDetail struct {
	Key              string           `json:"key"`
	ID               string           `json:"id"`
	Summary          string           `json:"summary"`
	Description      json.RawMessage  `json:"description"`
	Status           StatusView       `json:"status"`
	IssueType        IssueTypeView    `json:"issueType"`
	Priority         PriorityView     `json:"priority"`
	Assignee         *PersonView      `json:"assignee"`
	Reporter         *PersonView      `json:"reporter"`
	Project          ProjectView      `json:"project"`
	Labels           []string         `json:"labels"`
	Components       []string         `json:"components"`
	FixVersions      []string         `json:"fixVersions"`
	AffectedVersions []string         `json:"affectedVersions"`
	Created          string           `json:"created"`
	Updated          string           `json:"updated"`
	DueDate          *string          `json:"dueDate"`
	TimeTracking     TimeTrackingView `json:"timeTracking"`
	Resolution       *ResolutionView  `json:"resolution"`
	Environment      json.RawMessage  `json:"environment"`
	Parent           *ParentView      `json:"parent"`
	Subtasks         []SubtaskView    `json:"subtasks"`
}

// StatusView is the workflow status and its category.
type StatusView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// IssueTypeView is the issue type name and icon.
type IssueTypeView struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// PriorityView is the priority name and icon; the icon may be null.
type PriorityView struct {
	Name    string  `json:"name"`
	IconURL *string `json:"iconUrl"`
}

// PersonView identifies an assignee or reporter.
type PersonView struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AccountID   string `json:"accountId"`
}

// ProjectView identifies the project an issue belongs to.
type ProjectView struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ProjectType string `json:"projectType"`
}

// TimeTrackingView values are in seconds.
type TimeTrackingView struct {
	OriginalEstimate  *int64 `json:"originalEstimate"`
	RemainingEstimate *int64 `json:"remainingEstimate"`
	TimeSpent         *int64 `json:"timeSpent"`
}

// ResolutionView is how a resolved issue was closed.
type ResolutionView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ParentView references the parent issue.
type ParentView struct {
	Key     string `json:"key"`
	Summary string `json:"summary"`
}

// SubtaskView is one subtask reference.
type SubtaskView struct {
	Key     string `json:"key"`
	Summary string `json:"summary"`
	Status  string `json:"status"`
}
