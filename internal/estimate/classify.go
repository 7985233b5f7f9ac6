// Package estimate classifies tracker issues by completion state and
// folds them into a sprints-remaining projection.
package estimate

import (
	"github.com/statustracker/statustracker/internal/integrations/jira"
)

// StatusDone is the status-category display name Jira assigns to
// finished issues.
const StatusDone = "Done"

// Classified is a sealed interface over the completion states an issue
// can be in. Only Complete, Pointed and Unpointed implement it.
type Classified interface {
	classified()
}

// Complete marks an issue whose status category is done.
type Complete struct{}

func (Complete) classified() {}

// Pointed marks an unfinished issue carrying a nonzero estimate.
type Pointed struct {
	Points float64
}

func (Pointed) classified() {}

// Unpointed marks an unfinished issue with no usable estimate.
type Unpointed struct{}

func (Unpointed) classified() {}

// StoryPoints scans fieldIDs in order and returns the first numeric
// value the issue carries under one of them. Instances can expose
// several candidate story-point fields; the first hit wins.
func StoryPoints(issue jira.Issue, fieldIDs []string) (float64, bool) {
	for _, id := range fieldIDs {
		if points, ok := issue.NumericField(id); ok {
			return points, true
		}
	}
	return 0, false
}

// Classify determines the completion state of a single issue. It is
// total: missing or malformed data maps to Unpointed, never an error.
//
// A done status category wins over any point value. A point value of
// zero counts as "not yet estimated" rather than "estimated at zero".
func Classify(issue jira.Issue, fieldIDs []string) Classified {
	if status, ok := issue.StatusCategory(); ok && status == StatusDone {
		return Complete{}
	}

	if points, ok := StoryPoints(issue, fieldIDs); ok {
		if points == 0 {
			return Unpointed{}
		}
		return Pointed{Points: points}
	}

	return Unpointed{}
}

// ClassifyAll classifies every issue in the slice, in order.
func ClassifyAll(issues []jira.Issue, fieldIDs []string) []Classified {
	out := make([]Classified, len(issues))
	for i, issue := range issues {
		out[i] = Classify(issue, fieldIDs)
	}
	return out
}
