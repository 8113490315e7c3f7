// Package users implements the user lookup tools.
package users

import (
	"context"
	"encoding/json"
	"fmt"

	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// SearchUsers runs a free-text query against the user directory and returns
// the raw result list.
func SearchUsers(ctx context.Context, api client.Requester, query string) (string, error) {
	var raw json.RawMessage
	if err := api.Get(ctx, client.Platform, "/user/search?query="+client.EscapeComponent(query), &raw); err != nil {
		return "", fmt.Errorf("failed to search user: %w", err)
	}

	out, err := types.IndentRaw(raw)
	if err != nil {
		return "", fmt.Errorf("failed to search user: %w", err)
	}
	return fmt.Sprintf("# User Search Results for \"%s\"\n\n%s", query, out), nil
}
