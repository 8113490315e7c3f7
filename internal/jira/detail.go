package jira

import (
	"context"
	"fmt"

	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// GetIssueDetail fetches one issue and renders its full projection.
func GetIssueDetail(ctx context.Context, api client.Requester, issueRef string) (string, error) {
	var issue types.Issue
	if err := api.Get(ctx, client.Platform, "/issue/"+issueRef, &issue); err != nil {
		return "", fmt.Errorf("failed to get issue detail: %w", err)
	}

	out, err := types.PrettyJSON(issueDetail(issue))
	if err != nil {
		return "", fmt.Errorf("failed to get issue detail: %w", err)
	}
	return fmt.Sprintf("# Issue Details: %s\n\n```json\n%s\n```\n", issue.Key, out), nil
}

func issueDetail(issue types.Issue) types.IssueDetail {
	f := issue.Fields

	d := types.IssueDetail{
		Key:              issue.Key,
		ID:               issue.ID,
		Summary:          f.Summary,
		Description:      f.Description,
		Status:           types.StatusView{Name: types.UnknownStatus, Category: types.UnknownStatus},
		Priority:         types.PriorityView{Name: types.NoPriority},
		Assignee:         personView(f.Assignee),
		Reporter:         personView(f.Reporter),
		Labels:           make([]string, 0, len(f.Labels)),
		Components:       names(f.Components),
		FixVersions:      names(f.FixVersions),
		AffectedVersions: names(f.Versions),
		Created:          f.Created,
		Updated:          f.Updated,
		TimeTracking: types.TimeTrackingView{
			OriginalEstimate:  nonZero(f.TimeOriginalEstimate),
			RemainingEstimate: nonZero(f.TimeEstimate),
			TimeSpent:         nonZero(f.TimeSpent),
		},
		Environment: f.Environment,
		Subtasks:    make([]types.SubtaskView, 0, len(f.Subtasks)),
	}

	if f.Status != nil {
		d.Status.Name = f.Status.Name
		if f.Status.StatusCategory != nil {
			d.Status.Category = f.Status.StatusCategory.Name
		}
	}
	if f.IssueType != nil {
		d.IssueType = types.IssueTypeView{Name: f.IssueType.Name, IconURL: f.IssueType.IconURL}
	}
	if f.Priority != nil {
		if f.Priority.Name != "" {
			d.Priority.Name = f.Priority.Name
		}
		d.Priority.IconURL = f.Priority.IconURL
	}
	if f.Project != nil {
		d.Project = types.ProjectView{Key: f.Project.Key, Name: f.Project.Name, ProjectType: f.Project.ProjectTypeKey}
	}
	d.Labels = append(d.Labels, f.Labels...)
	if f.DueDate != nil && *f.DueDate != "" {
		d.DueDate = f.DueDate
	}
	if f.Resolution != nil {
		d.Resolution = &types.ResolutionView{Name: f.Resolution.Name, Description: f.Resolution.Description}
	}
	if f.Parent != nil {
		p := &types.ParentView{Key: f.Parent.Key}
		if f.Parent.Fields != nil {
			p.Summary = f.Parent.Fields.Summary
		}
		d.Parent = p
	}
	for _, st := range f.Subtasks {
		v := types.SubtaskView{Key: st.Key, Status: types.UnknownStatus}
		if st.Fields != nil {
			v.Summary = st.Fields.Summary
			if st.Fields.Status != nil {
				v.Status = st.Fields.Status.Name
			}
		}
		d.Subtasks = append(d.Subtasks, v)
	}

	return d
}

func personView(u *types.User) *types.PersonView {
	if u == nil {
		return nil
	}
	return &types.PersonView{DisplayName: u.DisplayName, Email: u.EmailAddress, AccountID: u.AccountID}
}

func names(refs []types.NamedRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

// nonZero treats an unset estimate and a zero estimate alike.
func nonZero(v *int64) *int64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
