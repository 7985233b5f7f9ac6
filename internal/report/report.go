// Package report renders estimate results and issue exports for the
// terminal. The core pipeline hands it finished values; no computation
// happens here.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/statustracker/statustracker/internal/estimate"
)

var (
	completeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pointedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	estimatedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	unpointedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	defaultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	unestimatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	totalStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	velocityStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	sprintsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Summary writes the sprints-remaining figure and nothing else.
func Summary(w io.Writer, r estimate.Result) {
	fmt.Fprintf(w, "%.1f\n", r.SprintsRemaining)
}

// Explain writes the full breakdown of an estimate, one line per step
// of the computation.
func Explain(w io.Writer, r estimate.Result) {
	fmt.Fprintf(w, "There are %s cards completed.\n",
		completeStyle.Render(fmt.Sprintf("%d", r.NumComplete)))
	fmt.Fprintf(w, "There are %s cards remaining that are estimated, representing %s points left to go.\n",
		pointedStyle.Render(fmt.Sprintf("%d", r.NumPointed)),
		estimatedStyle.Render(fmt.Sprintf("%.0f", r.EstimatedPoints)))
	fmt.Fprintf(w, "There are %s cards remaining that are unestimated.  Using a default story point value of %s, there are %s × %s = %s points left to go.\n",
		unpointedStyle.Render(fmt.Sprintf("%d", r.NumUnpointed)),
		defaultStyle.Render(fmt.Sprintf("%.0f", r.DefaultStoryPoints)),
		unpointedStyle.Render(fmt.Sprintf("%d", r.NumUnpointed)),
		defaultStyle.Render(fmt.Sprintf("%.0f", r.DefaultStoryPoints)),
		unestimatedStyle.Render(fmt.Sprintf("%.0f", r.UnestimatedPoints)))
	fmt.Fprintf(w, "That means there are %s + %s = %s total points left to go.\n",
		estimatedStyle.Render(fmt.Sprintf("%.0f", r.EstimatedPoints)),
		unestimatedStyle.Render(fmt.Sprintf("%.0f", r.UnestimatedPoints)),
		totalStyle.Render(fmt.Sprintf("%.0f", r.UnfinishedPoints)))
	fmt.Fprintf(w, "Given a velocity of %s points / sprint, there is at least %s / %s = %s sprints remaining.\n",
		velocityStyle.Render(fmt.Sprintf("%.0f", r.Velocity)),
		totalStyle.Render(fmt.Sprintf("%.0f", r.UnfinishedPoints)),
		velocityStyle.Render(fmt.Sprintf("%.0f", r.Velocity)),
		sprintsStyle.Render(fmt.Sprintf("%.1f", r.SprintsRemaining)))
}
