package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statustracker/statustracker/internal/integrations/jira"
	"github.com/statustracker/statustracker/internal/integrations/jira/jql"
	"github.com/statustracker/statustracker/internal/report"
)

var (
	csvSearch  searchFlags
	csvOutFile string
)

// csvCmd exports the matched issues as CSV rows.
var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export matched issues as CSV",
	Long: `Export the matched issues as CSV with one row per issue:
ID, story points, status category and a browse link. Useful for
feeding a spreadsheet or a report without opening the tracker UI.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCSV(cmd)
	},
}

func init() {
	rootCmd.AddCommand(csvCmd)

	addSearchFlags(csvCmd, &csvSearch)
	csvCmd.Flags().StringVar(&csvOutFile, "out-file", "", "Output file path (stdout if not specified)")
}

func runCSV(cmd *cobra.Command) {
	cfg := loadConfig()
	csvSearch.apply(cfg)
	requireConnection(cfg)

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

	out := os.Stdout
	if csvOutFile != "" {
		f, err := os.Create(csvOutFile)
		if err != nil {
			fail("failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	rows := report.Flatten(issues, fieldIDs, cfg.URL)
	if err := report.WriteCSV(out, rows); err != nil {
		fail("%v", err)
	}
}
