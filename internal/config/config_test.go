package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		missing []string
	}{
		{
			name:    "All_Missing",
			env:     map[string]string{},
			missing: []string{EnvBaseURL, EnvEmail, EnvAPIToken},
		},
		{
			name:    "Only_URL",
			env:     map[string]string{EnvBaseURL: "https://example.atlassian.net"},
			missing: []string{EnvEmail, EnvAPIToken},
		},
		{
			name:    "Only_Email",
			env:     map[string]string{EnvEmail: "a@example.com"},
			missing: []string{EnvBaseURL, EnvAPIToken},
		},
		{
			name:    "Token_Missing",
			env:     map[string]string{EnvBaseURL: "https://example.atlassian.net", EnvEmail: "a@example.com"},
			missing: []string{EnvAPIToken},
		},
		{
			name:    "Blank_Values",
			env:     map[string]string{EnvBaseURL: "  ", EnvEmail: "a@example.com", EnvAPIToken: "\t"},
			missing: []string{EnvBaseURL, EnvAPIToken},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvBaseURL, EnvEmail, EnvAPIToken} {
				t.Setenv(key, tt.env[key])
			}

			_, err := Load()
			require.Error(t, err)

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.missing, cfgErr.Missing)
			for _, key := range tt.missing {
				assert.Contains(t, err.Error(), key)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvBaseURL, " https://example.atlassian.net/ ")
	t.Setenv(EnvEmail, "a@example.com")
	t.Setenv(EnvAPIToken, "tok")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{BaseURL: "https://example.atlassian.net", Email: "a@example.com", APIToken: "tok"}, cfg)
}

func TestLoad_InvalidURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "example.atlassian.net")
	t.Setenv(EnvEmail, "a@example.com")
	t.Setenv(EnvAPIToken, "tok")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvBaseURL)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "JIRA_BASE_URL=https://file.atlassian.net\nJIRA_EMAIL=file@example.com\n# comment\nJIRA_API_TOKEN=abc#def\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvEmail, "env@example.com")
	t.Setenv(EnvAPIToken, "")

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "https://file.atlassian.net", os.Getenv(EnvBaseURL))
	assert.Equal(t, "env@example.com", os.Getenv(EnvEmail))
	assert.Equal(t, "abc#def", os.Getenv(EnvAPIToken))
}

func TestLoadEnvFile_InsecurePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("JIRA_EMAIL=x@example.com\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o644))

	t.Setenv(EnvEmail, "")

	err := LoadEnvFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insecure permissions")
	assert.Empty(t, os.Getenv(EnvEmail))
}

func TestLoadEnvFile_NotExist(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractIssueRef(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Key", input: "PROJ-123", want: "PROJ-123"},
		{name: "Key_Whitespace", input: "  PROJ-1 \n", want: "PROJ-1"},
		{name: "Numeric_ID", input: "10042", want: "10042"},
		{name: "Browse_URL", input: "https://example.atlassian.net/browse/ABC-9", want: "ABC-9"},
		{name: "Browse_URL_Trailing_Slash", input: "https://example.atlassian.net/browse/ABC-9/", want: "ABC-9"},
		{name: "Empty", input: " ", wantErr: true},
		{name: "Path_Traversal", input: "../myself", wantErr: true},
		{name: "Dot_Segment", input: ".", wantErr: true},
		{name: "Double_Dot_Segment", input: "..", wantErr: true},
		{name: "Lowercase_Word", input: "myself", wantErr: true},
		{name: "Query", input: "ABC-1?expand=all", wantErr: true},
		{name: "Other_URL", input: "https://example.com/issues/ABC-1", wantErr: true},
		{name: "Too_Long", input: string(make([]byte, maxIssueRefLength+1)), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractIssueRef(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBoardID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1", want: "1"},
		{input: " 42 ", want: "42"},
		{input: "007", want: "7"},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1/../2", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBoardID(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}
