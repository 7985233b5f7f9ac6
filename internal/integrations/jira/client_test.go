package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statustracker/statustracker/internal/integrations/jira/jql"
)

func testStatement(t *testing.T) *jql.Statement {
	t.Helper()
	stmt, err := jql.Build([]string{"PROJ"}, nil, nil)
	require.NoError(t, err)
	return stmt
}

// searchServer serves canned page sizes in request order and records
// the offsets it was asked for. Pagination is strictly sequential, so
// no locking is needed.
type searchServer struct {
	pages    []int
	requests int
	offsets  []int
}

func (s *searchServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		idx := s.requests
		s.requests++
		s.offsets = append(s.offsets, req.StartAt)

		n := 0
		if idx < len(s.pages) {
			n = s.pages[idx]
		}
		issues := make([]Issue, n)
		for i := range issues {
			issues[i] = Issue{Key: fmt.Sprintf("PROJ-%d", req.StartAt+i+1)}
		}
		json.NewEncoder(w).Encode(searchResponse{Issues: issues})
	}
}

func TestSearchAllFetchesEveryPage(t *testing.T) {
	server := &searchServer{pages: []int{100, 100, 37}}
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	issues, err := client.SearchAll(context.Background(), []string{"status"}, testStatement(t))
	require.NoError(t, err)

	// The final short page ends the loop; no fourth request is made.
	assert.Len(t, issues, 237)
	assert.Equal(t, 3, server.requests)
	assert.Equal(t, []int{0, 100, 200}, server.offsets)
	assert.Equal(t, "PROJ-1", issues[0].Key)
	assert.Equal(t, "PROJ-237", issues[236].Key)
}

func TestSearchAllToleratesEmptyLastPage(t *testing.T) {
	server := &searchServer{pages: []int{100, 100, 100, 0}}
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	issues, err := client.SearchAll(context.Background(), []string{"status"}, testStatement(t))
	require.NoError(t, err)

	assert.Len(t, issues, 300)
	assert.Equal(t, 4, server.requests)
}

func TestSearchAllSingleShortPage(t *testing.T) {
	server := &searchServer{pages: []int{5}}
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	issues, err := client.SearchAll(context.Background(), []string{"status"}, testStatement(t))
	require.NoError(t, err)

	assert.Len(t, issues, 5)
	assert.Equal(t, 1, server.requests)
}

func TestSearchAllFailureDiscardsFetchedPages(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests > 1 {
			http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
			return
		}
		issues := make([]Issue, 100)
		json.NewEncoder(w).Encode(searchResponse{Issues: issues})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	issues, err := client.SearchAll(context.Background(), []string{"status"}, testStatement(t))

	// A truncated result set would silently skew the tally, so nothing
	// is returned on failure.
	require.Error(t, err)
	assert.Nil(t, issues)
	assert.Contains(t, err.Error(), "offset 100")
}

func TestSearchAllSendsCredentialsAndQuery(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotAuthOK bool
		gotUser   string
		gotBody   searchRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUser, _, gotAuthOK = r.BasicAuth()
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "user@example.com", "token")
	_, err := client.SearchAll(context.Background(), []string{"customfield_10016", "status"}, testStatement(t))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/rest/api/2/search", gotPath)
	assert.True(t, gotAuthOK)
	assert.Equal(t, "user@example.com", gotUser)
	assert.Equal(t, []string{"customfield_10016", "status"}, gotBody.Fields)
	assert.Equal(t, `(project IN ("PROJ"))`, gotBody.JQL)
	assert.Equal(t, 100, gotBody.MaxResults)
}

func TestGetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/api/2/field", r.URL.Path)
		json.NewEncoder(w).Encode([]Field{
			{ID: "customfield_10016", Name: "Story Points"},
			{ID: "summary", Name: "Summary"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	fields, err := client.GetFields(context.Background())
	require.NoError(t, err)

	require.Len(t, fields, 2)
	assert.Equal(t, Field{ID: "customfield_10016", Name: "Story Points"}, fields[0])
}

func TestGetFieldsReportsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "bad-token")
	_, err := client.GetFields(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestStoryPointFieldIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Field{
			{ID: "customfield_10016", Name: "Story Points"},
			{ID: "customfield_10002", Name: "Epic Link"},
			{ID: "customfield_10021", Name: "Story Points"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	ids, err := client.StoryPointFieldIDs(context.Background(), "Story Points")
	require.NoError(t, err)

	assert.Equal(t, []string{"customfield_10016", "customfield_10021"}, ids)
}

func TestAddLabel(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "token")
	err := client.AddLabel(context.Background(), "PROJ-42", "needs-triage")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/rest/api/2/issue/PROJ-42", gotPath)
	assert.Equal(t, map[string]any{
		"update": map[string]any{
			"labels": []any{map[string]any{"add": "needs-triage"}},
		},
	}, gotBody)
}
