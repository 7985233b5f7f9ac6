package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/statustracker/statustracker/internal/integrations/jira"
)

// testIssue builds a raw issue with the given status category and
// extra field values. An empty status leaves the status field out
// entirely.
func testIssue(statusCategory string, fields map[string]any) jira.Issue {
	f := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		f[k] = v
	}
	if statusCategory != "" {
		f["status"] = map[string]any{
			"statusCategory": map[string]any{"name": statusCategory},
		}
	}
	return jira.Issue{Key: "PROJ-1", Fields: f}
}

func TestClassifyDoneWinsOverPoints(t *testing.T) {
	issue := testIssue("Done", map[string]any{"customfield_10016": 5.0})

	got := Classify(issue, []string{"customfield_10016"})
	assert.Equal(t, Complete{}, got)
}

func TestClassifyZeroPointsMeansUnestimated(t *testing.T) {
	issue := testIssue("In Progress", map[string]any{"customfield_10016": 0.0})

	got := Classify(issue, []string{"customfield_10016"})
	assert.Equal(t, Unpointed{}, got)
}

func TestClassifyPointedIssue(t *testing.T) {
	issue := testIssue("In Progress", map[string]any{"customfield_10016": 3.5})

	got := Classify(issue, []string{"customfield_10016"})
	assert.Equal(t, Pointed{Points: 3.5}, got)
}

func TestClassifyMissingDataIsUnpointed(t *testing.T) {
	tests := []struct {
		name   string
		issue  jira.Issue
		fields []string
	}{
		{"no fields at all", testIssue("", nil), []string{"customfield_10016"}},
		{"non-numeric value", testIssue("To Do", map[string]any{"customfield_10016": "five"}), []string{"customfield_10016"}},
		{"no resolved field ids", testIssue("To Do", map[string]any{"customfield_10016": 5.0}), nil},
		{"status name is not Done", testIssue("Almost Done", nil), []string{"customfield_10016"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Unpointed{}, Classify(tt.issue, tt.fields))
		})
	}
}

func TestClassifyFirstNumericFieldWins(t *testing.T) {
	issue := testIssue("In Progress", map[string]any{
		"customfield_10016": "not a number",
		"customfield_10021": 8.0,
		"customfield_10030": 2.0,
	})

	// The scan skips non-numeric values and stops at the first hit.
	got := Classify(issue, []string{"customfield_10016", "customfield_10021", "customfield_10030"})
	assert.Equal(t, Pointed{Points: 8.0}, got)
}

func TestStoryPointsRespectsFieldOrder(t *testing.T) {
	issue := testIssue("", map[string]any{
		"customfield_10021": 8.0,
		"customfield_10016": 3.0,
	})

	points, ok := StoryPoints(issue, []string{"customfield_10016", "customfield_10021"})
	assert.True(t, ok)
	assert.Equal(t, 3.0, points)
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	issues := []jira.Issue{
		testIssue("Done", nil),
		testIssue("To Do", map[string]any{"customfield_10016": 5.0}),
		testIssue("To Do", nil),
	}

	got := ClassifyAll(issues, []string{"customfield_10016"})
	assert.Equal(t, []Classified{Complete{}, Pointed{Points: 5.0}, Unpointed{}}, got)
}
