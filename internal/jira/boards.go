// Package jira implements the board, issue, comment and server tools on top
// of the Jira Cloud agile and platform REST APIs.
package jira

import (
	"context"
	"errors"
	"fmt"

	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// ErrProjectKeyNotFound is returned when a board is not attached to a project.
var ErrProjectKeyNotFound = errors.New("board project key not found")

// ListBoards lists the scrum boards visible to the caller.
func ListBoards(ctx context.Context, api client.Requester) (string, error) {
	var page types.BoardPage
	if err := api.Get(ctx, client.Agile, "/board?type=scrum", &page); err != nil {
		return "", fmt.Errorf("failed to get boards: %w", err)
	}

	boards := make([]types.BoardSummary, 0, len(page.Values))
	for _, b := range page.Values {
		boards = append(boards, boardSummary(b))
	}

	out, err := types.PrettyJSON(boards)
	if err != nil {
		return "", fmt.Errorf("failed to get boards: %w", err)
	}
	return "# Jira Scrum Boards\n\n" + out, nil
}

func boardSummary(b types.Board) types.BoardSummary {
	location := types.NoLocation
	if b.Location != nil && b.Location.DisplayName != "" {
		location = b.Location.DisplayName
	}
	return types.BoardSummary{
		ID:       b.ID,
		Name:     b.Name,
		Type:     b.Type,
		Location: location,
	}
}
