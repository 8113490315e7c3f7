package jira

import (
	"context"
	"fmt"

	"jira-mcp/internal/adf"
	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// AddComment appends a plain-text comment to an issue. The text is sent as a
// single ADF paragraph, unmodified.
func AddComment(ctx context.Context, api client.Requester, issueRef, body string) (string, error) {
	req := types.CommentRequest{Body: adf.TextDocument(body)}

	var comment types.Comment
	if err := api.Post(ctx, client.Platform, "/issue/"+issueRef+"/comment", req, &comment); err != nil {
		return "", fmt.Errorf("failed to add comment: %w", err)
	}

	text := body
	if comment.Body != nil {
		if stored := adf.PlainText(*comment.Body); stored != "" {
			text = stored
		}
	}

	return fmt.Sprintf("# Comment Added\n\nComment ID: %s\nIssue: %s\nBody: %s", comment.ID, issueRef, text), nil
}
