package types

import (
	"encoding/json"

	"jira-mcp/internal/adf"
)

// Jira REST resources. Optional relations are pointers or slices so that an
// absent or null value in the response is distinguishable from a zero value.

// Board is an agile board resource.
type Board struct {
	ID       int            `json:"id"`
	Self     string         `json:"self,omitempty"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Location *BoardLocation `json:"location,omitempty"`
}

// BoardLocation identifies the project a board belongs to.
type BoardLocation struct {
	ProjectID      int    `json:"projectId,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	ProjectName    string `json:"projectName,omitempty"`
	ProjectKey     string `json:"projectKey,omitempty"`
	ProjectTypeKey string `json:"projectTypeKey,omitempty"`
	Name           string `json:"name,omitempty"`
}

// BoardPage is one page of GET /rest/agile/1.0/board.
type BoardPage struct {
	MaxResults int     `json:"maxResults"`
	StartAt    int     `json:"startAt"`
	Total      int     `json:"total"`
	IsLast     bool    `json:"isLast"`
	Values     []Board `json:"values"`
}

// SearchResult is the response of GET /rest/api/3/search.
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Issue is a Jira work item.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self,omitempty"`
	Fields IssueFields `json:"fields"`
}

// IssueFields holds the issue fields this server reads.
type IssueFields struct {
	Summary              string          `json:"summary"`
	Description          json.RawMessage `json:"description"`
	Status               *Status         `json:"status"`
	IssueType            *IssueType      `json:"issuetype"`
	Priority             *Priority       `json:"priority"`
	Assignee             *User           `json:"assignee"`
	Reporter             *User           `json:"reporter"`
	Project              *Project        `json:"project"`
	Labels               []string        `json:"labels"`
	Components           []NamedRef      `json:"components"`
	FixVersions          []NamedRef      `json:"fixVersions"`
	Versions             []NamedRef      `json:"versions"`
	Created              string          `json:"created"`
	Updated              string          `json:"updated"`
	DueDate              *string         `json:"duedate"`
	TimeOriginalEstimate *int64          `json:"timeoriginalestimate"`
	TimeEstimate         *int64          `json:"timeestimate"`
	TimeSpent            *int64          `json:"timespent"`
	Resolution           *Resolution     `json:"resolution"`
	Environment          json.RawMessage `json:"environment"`
	Parent               *IssueRef       `json:"parent"`
	Subtasks             []IssueRef      `json:"subtasks"`
}

// Status is an issue workflow status.
type Status struct {
	Name           string          `json:"name"`
	StatusCategory *StatusCategory `json:"statusCategory"`
}

// StatusCategory groups statuses (To Do, In Progress, Done).
type StatusCategory struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// IssueType is the type of an issue (Bug, Story, Task, ...).
type IssueType struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
	Subtask bool   `json:"subtask"`
}

// Priority is an issue priority.
type Priority struct {
	Name    string  `json:"name"`
	IconURL *string `json:"iconUrl"`
}

// Project is the project an issue belongs to.
type Project struct {
	ID             string `json:"id"`
	Key            string `json:"key"`
	Name           string `json:"name"`
	ProjectTypeKey string `json:"projectTypeKey"`
}

// NamedRef is a component or version reference.
type NamedRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Resolution is how an issue was resolved.
type Resolution struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IssueRef is a parent or subtask reference embedded in an issue.
type IssueRef struct {
	ID     string          `json:"id"`
	Key    string          `json:"key"`
	Fields *IssueRefFields `json:"fields"`
}

// IssueRefFields are the fields Jira embeds in parent and subtask references.
type IssueRefFields struct {
	Summary string  `json:"summary"`
	Status  *Status `json:"status"`
}

// User is a Jira user account.
type User struct {
	Self         string `json:"self,omitempty"`
	AccountID    string `json:"accountId"`
	AccountType  string `json:"accountType,omitempty"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Active       bool   `json:"active"`
	TimeZone     string `json:"timeZone"`
	Locale       string `json:"locale,omitempty"`
}

// ServerInfo is the response of GET /rest/api/3/serverInfo.
type ServerInfo struct {
	BaseURL        string `json:"baseUrl"`
	Version        string `json:"version"`
	VersionNumbers []int  `json:"versionNumbers,omitempty"`
	DeploymentType string `json:"deploymentType,omitempty"`
	BuildNumber    int    `json:"buildNumber"`
	BuildDate      string `json:"buildDate"`
	ServerTime     string `json:"serverTime"`
	ScmInfo        string `json:"scmInfo,omitempty"`
	ServerTitle    string `json:"serverTitle"`
}

// CommentRequest is the body of POST /rest/api/3/issue/{key}/comment.
type CommentRequest struct {
	Body adf.Node `json:"body"`
}

// Comment is a created issue comment.
type Comment struct {
	ID      string    `json:"id"`
	Self    string    `json:"self,omitempty"`
	Author  *User     `json:"author,omitempty"`
	Body    *adf.Node `json:"body,omitempty"`
	Created string    `json:"created,omitempty"`
}
