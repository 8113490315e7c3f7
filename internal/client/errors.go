package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	jira "github.com/andygrunwald/go-jira"
)

const (
	maxErrorBody   = 64 << 10
	maxErrorDetail = 500
)

// APIError is returned for any non-2xx response from Jira.
type APIError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("Jira API error: %d %s", e.StatusCode, e.Status)
	if e.Detail != "" {
		msg += " - " + e.Detail
	}
	return msg
}

func newAPIError(code int, status string, body []byte) *APIError {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return &APIError{
		StatusCode: code,
		Status:     text,
		Detail:     errorDetail(body),
	}
}

// errorDetail condenses Jira's {"errorMessages": [...], "errors": {...}} body.
// Unknown bodies are returned verbatim, truncated.
func errorDetail(body []byte) string {
	body = []byte(strings.TrimSpace(string(body)))
	if len(body) == 0 {
		return ""
	}

	var e jira.Error
	if json.Unmarshal(body, &e) == nil {
		var parts []string
		if len(e.ErrorMessages) > 0 {
			parts = append(parts, strings.Join(e.ErrorMessages, "; "))
		}
		if len(e.Errors) > 0 {
			keys := make([]string, 0, len(e.Errors))
			for k := range e.Errors {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			kv := make([]string, 0, len(keys))
			for _, k := range keys {
				kv = append(kv, fmt.Sprintf("%s: %s", k, e.Errors[k]))
			}
			parts = append(parts, strings.Join(kv, "; "))
		}
		if len(parts) > 0 {
			return strings.Join(parts, " | ")
		}
	}

	if len(body) > maxErrorDetail {
		return string(body[:maxErrorDetail]) + "..."
	}
	return string(body)
}
