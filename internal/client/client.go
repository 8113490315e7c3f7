package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jira "github.com/andygrunwald/go-jira"
	"go.uber.org/zap"

	"jira-mcp/internal/config"
)

// Family selects which Jira REST namespace an endpoint lives in.
type Family string

const (
	Platform Family = "platform"
	Agile    Family = "agile"
)

const (
	platformPrefix = "/rest/api/3"
	agilePrefix    = "/rest/agile/1.0"
)

// Prefix returns the path prefix of the REST namespace.
func (f Family) Prefix() string {
	if f == Agile {
		return agilePrefix
	}
	return platformPrefix
}

// Requester is the part of Client the operation handlers depend on.
type Requester interface {
	Get(ctx context.Context, family Family, endpoint string, out any) error
	Post(ctx context.Context, family Family, endpoint string, body, out any) error
}

// Client issues authenticated requests against one Jira Cloud site.
type Client struct {
	jira   *jira.Client
	logger *zap.Logger
}

// New builds a Client for cfg. Requests carry Basic auth derived from
// cfg.Email and cfg.APIToken; there is no client-side timeout or retry.
func New(cfg config.Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}

	tp := jira.BasicAuthTransport{
		Username:  cfg.Email,
		Password:  cfg.APIToken,
		Transport: &loggingTransport{base: base, logger: logger},
	}

	jc, err := jira.NewClient(tp.Client(), cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	return &Client{jira: jc, logger: logger}, nil
}

// Get performs a GET on family's prefix + endpoint and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, family Family, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, family, endpoint, nil, out)
}

// Post sends body as JSON to family's prefix + endpoint and decodes the response into out.
func (c *Client) Post(ctx context.Context, family Family, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, family, endpoint, body, out)
}

func (c *Client) do(ctx context.Context, method string, family Family, endpoint string, body, out any) error {
	req, err := c.jira.NewRequestWithContext(ctx, method, family.Prefix()+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.jira.Do(req, out)
	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(resp.StatusCode, resp.Status, raw)
	}
	if err != nil {
		if resp == nil {
			return fmt.Errorf("failed to connect to Jira: %w", err)
		}
		return fmt.Errorf("failed to parse Jira response: %w", err)
	}
	return nil
}

// EscapeComponent escapes s for use inside a URL query value. It leaves the
// characters ! ' ( ) * unescaped and encodes spaces as %20.
func EscapeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// IsAPIError reports whether err carries an upstream HTTP status.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
