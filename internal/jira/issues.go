package jira

import (
	"context"
	"fmt"

	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// ListMyIssues lists the issues assigned to the caller in the project of
// boardID. The board is fetched first; the search is only issued once its
// project key is known.
func ListMyIssues(ctx context.Context, api client.Requester, boardID string) (string, error) {
	var board types.Board
	if err := api.Get(ctx, client.Agile, "/board/"+boardID, &board); err != nil {
		return "", fmt.Errorf("failed to get issues: %w", err)
	}

	if board.Location == nil || board.Location.ProjectKey == "" {
		return "", fmt.Errorf("failed to get issues: %w", ErrProjectKeyNotFound)
	}

	jql := fmt.Sprintf(`assignee=currentUser() AND project="%s"`, board.Location.ProjectKey)

	var result types.SearchResult
	if err := api.Get(ctx, client.Platform, "/search?jql="+client.EscapeComponent(jql), &result); err != nil {
		return "", fmt.Errorf("failed to get issues: %w", err)
	}

	issues := make([]types.IssueSummary, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, issueSummary(issue))
	}

	out, err := types.PrettyJSON(issues)
	if err != nil {
		return "", fmt.Errorf("failed to get issues: %w", err)
	}
	return fmt.Sprintf("# My Issues - %s (%d total)\n\n%s", board.Name, result.Total, out), nil
}

func issueSummary(issue types.Issue) types.IssueSummary {
	f := issue.Fields

	s := types.IssueSummary{
		Key:      issue.Key,
		Summary:  f.Summary,
		Status:   types.UnknownStatus,
		Assignee: types.Unassigned,
		Priority: types.NoPriority,
		Created:  f.Created,
		Updated:  f.Updated,
	}
	if f.Status != nil && f.Status.Name != "" {
		s.Status = f.Status.Name
	}
	if f.Assignee != nil && f.Assignee.DisplayName != "" {
		s.Assignee = f.Assignee.DisplayName
	}
	if f.Priority != nil && f.Priority.Name != "" {
		s.Priority = f.Priority.Name
	}
	if f.IssueType != nil {
		s.IssueType = f.IssueType.Name
	}
	return s
}
