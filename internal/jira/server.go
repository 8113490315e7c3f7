package jira

import (
	"context"
	"fmt"
	"strings"

	"jira-mcp/internal/client"
	"jira-mcp/internal/types"
)

// GetServerInfo reports the site's server metadata.
func GetServerInfo(ctx context.Context, api client.Requester) (string, error) {
	var info types.ServerInfo
	if err := api.Get(ctx, client.Platform, "/serverInfo", &info); err != nil {
		return "", fmt.Errorf("failed to get server info: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Jira Server Information\n\n")
	sb.WriteString(fmt.Sprintf("**Server Time**: %s\n", info.ServerTime))
	sb.WriteString(fmt.Sprintf("**Base URL**: %s\n", info.BaseURL))
	sb.WriteString(fmt.Sprintf("**Version**: %s\n", info.Version))
	sb.WriteString(fmt.Sprintf("**Build Date**: %s\n", info.BuildDate))
	sb.WriteString(fmt.Sprintf("**Server Title**: %s", info.ServerTitle))
	return sb.String(), nil
}
