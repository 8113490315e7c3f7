package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// CurrentUserInfo reports the authenticated user together with the server
// metadata. The user is fetched first, then the server info.
func CurrentUserInfo(ctx context.Context, api client.Requester) (string, error) {
	var rawUser json.RawMessage
	if err := api.Get(ctx, client.Platform, "/myself", &rawUser); err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}

	var rawServer json.RawMessage
	if err := api.Get(ctx, client.Platform, "/serverInfo", &rawServer); err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}

	var user types.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return "", fmt.Errorf("failed to get user info: failed to parse user: %w", err)
	}
	var server types.ServerInfo
	if err := json.Unmarshal(rawServer, &server); err != nil {
		return "", fmt.Errorf("failed to get user info: failed to parse server info: %w", err)
	}

	userJSON, err := types.IndentRaw(rawUser)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	serverJSON, err := types.IndentRaw(rawServer)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Current User - Complete Data\n\n")
	sb.WriteString("## User Information\n")
	sb.WriteString(userJSON)
	sb.WriteString("\n\n## Server Information\n")
	sb.WriteString(serverJSON)
	sb.WriteString("\n\n## Quick Summary\n")
	sb.WriteString(fmt.Sprintf("- **Display Name**: %s\n", user.DisplayName))
	sb.WriteString(fmt.Sprintf("- **Email**: %s\n", user.EmailAddress))
	sb.WriteString(fmt.Sprintf("- **Account ID**: %s\n", user.AccountID))
	sb.WriteString(fmt.Sprintf("- **Time Zone**: %s\n", user.TimeZone))
	sb.WriteString(fmt.Sprintf("- **Server Time**: %s\n", server.ServerTime))
	sb.WriteString(fmt.Sprintf("- **Active**: %t\n", user.Active))
	return sb.String(), nil
}
