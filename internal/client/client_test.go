package client

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-mcp/internal/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(config.Config{BaseURL: srv.URL, Email: "bot@example.com", APIToken: "t0ken"}, nil)
	require.NoError(t, err)
	return c
}

func TestClient_Get(t *testing.T) {
	t.Parallel()
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = io.WriteString(w, `{"name":"board"}`)
	})

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.Get(context.Background(), Agile, "/board/1?expand=x", &out))

	assert.Equal(t, "board", out.Name)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/rest/agile/1.0/board/1", got.URL.Path)
	assert.Equal(t, "expand=x", got.URL.RawQuery)
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("bot@example.com:t0ken"))
	assert.Equal(t, want, got.Header.Get("Authorization"))
}

func TestClient_Post(t *testing.T) {
	t.Parallel()
	var (
		method string
		path   string
		body   string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"1"}`)
	})

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Post(context.Background(), Platform, "/issue/A-1/comment", map[string]string{"k": "v"}, &out))

	assert.Equal(t, "1", out.ID)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/rest/api/3/issue/A-1/comment", path)
	assert.JSONEq(t, `{"k":"v"}`, body)
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantDetail string
	}{
		{
			name:       "Error_Messages",
			status:     http.StatusNotFound,
			body:       `{"errorMessages":["Issue does not exist or you do not have permission to see it."],"errors":{}}`,
			wantMsg:    "Jira API error: 404 Not Found - Issue does not exist",
			wantDetail: "Issue does not exist or you do not have permission to see it.",
		},
		{
			name:       "Field_Errors_Sorted",
			status:     http.StatusBadRequest,
			body:       `{"errorMessages":[],"errors":{"summary":"required","body":"empty"}}`,
			wantMsg:    "Jira API error: 400 Bad Request",
			wantDetail: "body: empty; summary: required",
		},
		{
			name:       "Messages_And_Field_Errors",
			status:     http.StatusBadRequest,
			body:       `{"errorMessages":["Invalid request"],"errors":{"comment":"Comment body can not be empty!"}}`,
			wantMsg:    "Jira API error: 400 Bad Request - Invalid request | comment: Comment body can not be empty!",
			wantDetail: "Invalid request | comment: Comment body can not be empty!",
		},
		{
			name:       "Plain_Body",
			status:     http.StatusBadGateway,
			body:       "upstream down",
			wantMsg:    "Jira API error: 502 Bad Gateway - upstream down",
			wantDetail: "upstream down",
		},
		{
			name:    "Empty_Body",
			status:  http.StatusUnauthorized,
			wantMsg: "Jira API error: 401 Unauthorized",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.Get(context.Background(), Platform, "/myself", nil)
			require.Error(t, err)
			assert.True(t, IsAPIError(err))

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantMsg), "got %q", err.Error())
		})
	}
}

func TestClient_ConnectionError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(config.Config{BaseURL: url, Email: "a", APIToken: "b"}, nil)
	require.NoError(t, err)

	err = c.Get(context.Background(), Platform, "/myself", nil)
	require.Error(t, err)
	assert.False(t, IsAPIError(err))
	assert.Contains(t, err.Error(), "failed to connect to Jira")
}

func TestClient_ContextCanceled(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, Platform, "/myself", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestErrorDetail_Truncates(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", maxErrorDetail+50)
	got := errorDetail([]byte(long))
	assert.Len(t, got, maxErrorDetail+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestEscapeComponent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{in: "user@domain.com", want: "user%40domain.com"},
		{in: `assignee=currentUser() AND project="TEST"`, want: "assignee%3DcurrentUser()%20AND%20project%3D%22TEST%22"},
		{in: "a+b", want: "a%2Bb"},
		{in: "it's *fine*!", want: "it's%20*fine*!"},
		{in: "~-_.", want: "~-_."},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeComponent(tt.in), "input %q", tt.in)
	}
}
