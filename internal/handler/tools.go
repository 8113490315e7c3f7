package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"jira-mcp/internal/client"
	"jira-mcp/internal/config"
	"jira-mcp/internal/jira"
	"jira-mcp/internal/users"
)

// Tool pairs an MCP tool declaration with the operation that serves it.
type Tool struct {
	Definition mcp.Tool
	Run        func(ctx context.Context, api client.Requester, args map[string]any) (string, error)
}

// Tools returns the tool registry in the order it is advertised to hosts.
// Dispatch is driven by the same list, so the two cannot drift apart.
func Tools() []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("get_boards",
				mcp.WithDescription("Get all available Jira scrum boards"),
			),
			Run: func(ctx context.Context, api client.Requester, _ map[string]any) (string, error) {
				return jira.ListBoards(ctx, api)
			},
		},
		{
			Definition: mcp.NewTool("get_issues",
				mcp.WithDescription("Get current user's tasks from a specific Jira board"),
				mcp.WithString("boardId",
					mcp.Required(),
					mcp.Description("Board ID to get your tasks from"),
				),
			),
			Run: func(ctx context.Context, api client.Requester, args map[string]any) (string, error) {
				raw, err := requireString(args, "boardId")
				if err != nil {
					return "", err
				}
				boardID, err := config.ParseBoardID(raw)
				if err != nil {
					return "", err
				}
				return jira.ListMyIssues(ctx, api, boardID)
			},
		},
		{
			Definition: mcp.NewTool("get_current_user_info",
				mcp.WithDescription("Get current authenticated user information including login, email, timezone"),
			),
			Run: func(ctx context.Context, api client.Requester, _ map[string]any) (string, error) {
				return users.CurrentUserInfo(ctx, api)
			},
		},
		{
			Definition: mcp.NewTool("search_user",
				mcp.WithDescription("Search for a user by login name or email"),
				mcp.WithString("query",
					mcp.Required(),
					mcp.Description("Username, email, or display name to search for"),
				),
			),
			Run: func(ctx context.Context, api client.Requester, args map[string]any) (string, error) {
				query, err := requireString(args, "query")
				if err != nil {
					return "", err
				}
				return users.SearchUsers(ctx, api, query)
			},
		},
		{
			Definition: mcp.NewTool("get_server_info",
				mcp.WithDescription("Get Jira server information including current server time"),
			),
			Run: func(ctx context.Context, api client.Requester, _ map[string]any) (string, error) {
				return jira.GetServerInfo(ctx, api)
			},
		},
		{
			Definition: mcp.NewTool("add_comment_to_issue",
				mcp.WithDescription("Add a comment to a specific Jira issue"),
				mcp.WithString("issueIdOrKey",
					mcp.Required(),
					mcp.Description("The issue key or ID to add a comment to"),
				),
				mcp.WithString("body",
					mcp.Required(),
					mcp.Description("The comment text"),
				),
			),
			Run: func(ctx context.Context, api client.Requester, args map[string]any) (string, error) {
				ref, err := issueRef(args)
				if err != nil {
					return "", err
				}
				body, err := requireString(args, "body")
				if err != nil {
					return "", err
				}
				return jira.AddComment(ctx, api, ref, body)
			},
		},
		{
			Definition: mcp.NewTool("get_issue_detail",
				mcp.WithDescription("Get detailed information about a specific Jira issue"),
				mcp.WithString("issueIdOrKey",
					mcp.Required(),
					mcp.Description("The issue key, ID or browse URL"),
				),
			),
			Run: func(ctx context.Context, api client.Requester, args map[string]any) (string, error) {
				ref, err := issueRef(args)
				if err != nil {
					return "", err
				}
				return jira.GetIssueDetail(ctx, api, ref)
			},
		},
	}
}

// requireString returns a non-blank string argument.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: required argument %q not found", config.ErrInvalidInput, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %q must be a string", config.ErrInvalidInput, key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: argument %q must not be empty", config.ErrInvalidInput, key)
	}
	return s, nil
}

func issueRef(args map[string]any) (string, error) {
	raw, err := requireString(args, "issueIdOrKey")
	if err != nil {
		return "", err
	}
	return config.ExtractIssueRef(raw)
}
