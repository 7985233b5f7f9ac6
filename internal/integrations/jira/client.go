// Package jira wraps the Jira REST API: authenticated JSON transport,
// field-schema listing, paginated issue search and issue labeling.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/statustracker/statustracker/internal/integrations/jira/jql"
)

// searchPageSize is how many issues each search request asks for. The
// pagination loop keys its termination off this value.
const searchPageSize = 100

// StatusFieldID is the well-known id of the issue status field. It is
// not a custom field, so schema resolution never returns it; callers
// append it to the retrieval set themselves.
const StatusFieldID = "status"

// Client talks to a single Jira instance over its v2 REST API using
// basic auth (username + API token).
type Client struct {
	baseURL    string
	username   string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the instance at baseURL.
func NewClient(baseURL, username, token string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		token:    token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// sendJSON performs one request against the API and decodes the JSON
// response into out. body may be nil for bodyless methods; out may be
// nil when the response is not needed. Exactly one attempt is made.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(msg))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// GetFields lists every field defined on the instance, custom fields
// included.
func (c *Client) GetFields(ctx context.Context) ([]Field, error) {
	var fields []Field
	if err := c.sendJSON(ctx, http.MethodGet, "/rest/api/2/field", nil, &fields); err != nil {
		return nil, fmt.Errorf("failed to fetch fields: %w", err)
	}
	return fields, nil
}

type searchRequest struct {
	Fields     []string `json:"fields"`
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
}

type searchResponse struct {
	Issues []Issue `json:"issues"`
}

// SearchAll runs the statement against the search endpoint and fetches
// every page of results into one slice. Only the listed field ids are
// requested per issue.
//
// Pages are fetched strictly in order. The offset advances by the
// number of issues a page actually returned, and the loop stops as soon
// as a page comes back short of the requested size; this detects the
// last page without relying on the server reporting a total count. A
// failure on any page fails the whole call — a truncated result set
// would silently corrupt whatever is computed from it.
func (c *Client) SearchAll(ctx context.Context, fieldIDs []string, stmt *jql.Statement) ([]Issue, error) {
	var all []Issue
	startAt := 0

	for {
		req := searchRequest{
			Fields:     fieldIDs,
			JQL:        stmt.JQL(),
			StartAt:    startAt,
			MaxResults: searchPageSize,
		}

		var page searchResponse
		if err := c.sendJSON(ctx, http.MethodPost, "/rest/api/2/search", req, &page); err != nil {
			return nil, fmt.Errorf("search failed at offset %d: %w", startAt, err)
		}

		all = append(all, page.Issues...)
		startAt += len(page.Issues)

		if len(page.Issues) < searchPageSize {
			return all, nil
		}
	}
}

type labelAdd struct {
	Add string `json:"add"`
}

type issueUpdate struct {
	Labels []labelAdd `json:"labels"`
}

type issueEdit struct {
	Update issueUpdate `json:"update"`
}

// AddLabel attaches a label to the issue with the given key.
func (c *Client) AddLabel(ctx context.Context, key, label string) error {
	edit := issueEdit{Update: issueUpdate{Labels: []labelAdd{{Add: label}}}}
	path := "/rest/api/2/issue/" + url.PathEscape(key)
	if err := c.sendJSON(ctx, http.MethodPut, path, edit, nil); err != nil {
		return fmt.Errorf("failed to label issue %s: %w", key, err)
	}
	return nil
}
