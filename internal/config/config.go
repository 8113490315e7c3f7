package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Environment variables holding the Jira connection parameters.
const (
	EnvBaseURL  = "JIRA_BASE_URL"
	EnvEmail    = "JIRA_EMAIL"
	EnvAPIToken = "JIRA_API_TOKEN"
)

// Config holds the Jira Cloud connection parameters.
type Config struct {
	BaseURL  string
	Email    string
	APIToken string
}

// LoadFunc produces a Config. The dispatcher calls one on every invocation.
type LoadFunc func() (Config, error)

// Error reports missing connection parameters.
type Error struct {
	Missing []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("missing Jira configuration: set %s, %s and %s environment variables (missing: %s)",
		EnvBaseURL, EnvEmail, EnvAPIToken, strings.Join(e.Missing, ", "))
}

// ErrInvalidInput is returned when a tool argument cannot be used to build a request.
var ErrInvalidInput = errors.New("invalid input")

var (
	issueKeyPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*-\d+$`)
	issueIDPattern   = regexp.MustCompile(`^\d+$`)
	browseURLPattern = regexp.MustCompile(`^https?://[^/\s]+/browse/([A-Za-z][A-Za-z0-9_]*-\d+)/?$`)
)

const maxIssueRefLength = 100

// Load reads the connection parameters from the process environment.
// All three are required; the returned *Error names every missing one.
func Load() (Config, error) {
	cfg := Config{
		BaseURL:  strings.TrimRight(strings.TrimSpace(os.Getenv(EnvBaseURL)), "/"),
		Email:    strings.TrimSpace(os.Getenv(EnvEmail)),
		APIToken: strings.TrimSpace(os.Getenv(EnvAPIToken)),
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, EnvBaseURL)
	}
	if cfg.Email == "" {
		missing = append(missing, EnvEmail)
	}
	if cfg.APIToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	if len(missing) > 0 {
		return Config{}, &Error{Missing: missing}
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return Config{}, fmt.Errorf("%s must be an absolute http(s) URL, got %q", EnvBaseURL, cfg.BaseURL)
	}

	return cfg, nil
}

// DefaultEnvFile returns the path of the .env file next to the running binary.
func DefaultEnvFile() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), ".env"), nil
}

// LoadEnvFile fills unset environment variables from a KEY=value file.
// Files readable by group or others are refused.
func LoadEnvFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		return fmt.Errorf(".env file has insecure permissions (%04o). Run: chmod 600 %s", mode, path)
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, key := range file.Section(ini.DefaultSection).Keys() {
		if os.Getenv(key.Name()) != "" {
			continue
		}
		if err := os.Setenv(key.Name(), key.String()); err != nil {
			return err
		}
	}
	return nil
}

// ExtractIssueRef normalizes an issue reference. It accepts a key (PROJ-123),
// a numeric id, or a browse URL, and returns the key or id. Anything else is
// rejected, so the result is always a single safe path segment.
func ExtractIssueRef(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: issueIdOrKey is required", ErrInvalidInput)
	}
	if len(input) > maxIssueRefLength {
		return "", fmt.Errorf("%w: issue reference too long (max %d characters)", ErrInvalidInput, maxIssueRefLength)
	}

	if issueKeyPattern.MatchString(input) || issueIDPattern.MatchString(input) {
		return input, nil
	}

	if matches := browseURLPattern.FindStringSubmatch(input); len(matches) == 2 {
		return matches[1], nil
	}

	return "", fmt.Errorf("%w: must be an issue key, issue id or browse URL", ErrInvalidInput)
}

// ParseBoardID validates a board id argument.
func ParseBoardID(input string) (string, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.ParseUint(input, 10, 63)
	if err != nil || n == 0 {
		return "", fmt.Errorf("%w: boardId must be a positive integer, got %q", ErrInvalidInput, input)
	}
	return strconv.FormatUint(n, 10), nil
}
