package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statustracker/statustracker/internal/estimate"
	"github.com/statustracker/statustracker/internal/integrations/jira"
	"github.com/statustracker/statustracker/internal/integrations/jira/jql"
	"github.com/statustracker/statustracker/internal/report"
)

var (
	estimateSearch        searchFlags
	estimateDefaultPoints float64
	estimateVelocity      float64
)

// estimateCmd computes the sprints remaining for the matched issues.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the number of sprints remaining",
	Long: `Estimate how many sprints of work remain in the matched issues.

Unfinished issues contribute their story points; unestimated ones
contribute the default story point value. The total is divided by the
team's velocity. With --verbose the full computation is spelled out,
otherwise only the sprint count is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		runEstimate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	addSearchFlags(estimateCmd, &estimateSearch)
	estimateCmd.Flags().Float64Var(&estimateDefaultPoints, "default-story-points", 0, "Points assumed for unestimated cards")
	estimateCmd.Flags().Float64Var(&estimateVelocity, "velocity-in-story-points", 0, "Story points the team completes per sprint")
}

func runEstimate(cmd *cobra.Command) {
	cfg := loadConfig()
	estimateSearch.apply(cfg)
	if cmd.Flags().Changed("default-story-points") {
		cfg.DefaultStoryPoints = estimateDefaultPoints
	}
	if cmd.Flags().Changed("velocity-in-story-points") {
		cfg.Velocity = estimateVelocity
	}

	requireConnection(cfg)
	// Tally divides by velocity without guarding, so the precondition is
	// enforced here at the edge.
	if cfg.Velocity <= 0 {
		fail("velocity must be positive: set --velocity-in-story-points or velocity in the config file")
	}

	ctx := cmd.Context()
	client := jira.NewClient(cfg.URL, cfg.Username, cfg.Token)

	fieldIDs, err := client.StoryPointFieldIDs(ctx, cfg.StoryPointsField)
	if err != nil {
		fail("%v", err)
	}
	fieldIDs = append(fieldIDs, jira.StatusFieldID)

	stmt, err := jql.Build(cfg.Projects, cfg.Labels, cfg.IssueTypes)
	if err != nil {
		fail("%v", err)
	}

	if verbose {
		fmt.Println("Searching for issues with the following JQL:")
		fmt.Println(stmt.JQL())
	}

	issues, err := client.SearchAll(ctx, fieldIDs, stmt)
	if err != nil {
		fail("%v", err)
	}

	classified := estimate.ClassifyAll(issues, fieldIDs)
	result := estimate.Tally(classified, cfg.DefaultStoryPoints, cfg.Velocity)

	if verbose {
		report.Explain(os.Stdout, result)
	} else {
		report.Summary(os.Stdout, result)
	}
}
