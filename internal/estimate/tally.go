package estimate

import "fmt"

// Result aggregates a classification pass. It keeps the two input
// parameters alongside the counters so output can explain how the
// projection was computed.
type Result struct {
	NumComplete  int
	NumPointed   int
	NumUnpointed int

	// EstimatedPoints is the sum of points on unfinished, pointed issues.
	EstimatedPoints float64

	// UnestimatedPoints is NumUnpointed multiplied by the default.
	UnestimatedPoints float64

	// UnfinishedPoints is the estimated and unestimated sums combined.
	UnfinishedPoints float64

	SprintsRemaining float64

	DefaultStoryPoints float64
	Velocity           float64
}

// Tally folds classified issues into a Result. Each issue increments
// exactly one counter, so the outcome is independent of input order.
//
// Velocity must be positive. A zero or negative velocity is not
// guarded here and flows straight into the division, yielding an
// infinite or negative sprint count per IEEE-754; validate before
// calling.
func Tally(issues []Classified, defaultStoryPoints, velocity float64) Result {
	r := Result{
		DefaultStoryPoints: defaultStoryPoints,
		Velocity:           velocity,
	}

	for _, issue := range issues {
		switch issue := issue.(type) {
		case Complete:
			r.NumComplete++
		case Pointed:
			r.NumPointed++
			r.EstimatedPoints += issue.Points
		case Unpointed:
			r.NumUnpointed++
		default:
			panic(fmt.Sprintf("estimate: unhandled classification %T", issue))
		}
	}

	r.UnestimatedPoints = float64(r.NumUnpointed) * defaultStoryPoints
	r.UnfinishedPoints = r.EstimatedPoints + r.UnestimatedPoints
	r.SprintsRemaining = r.UnfinishedPoints / velocity

	return r
}
