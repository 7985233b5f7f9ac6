package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statustracker/statustracker/internal/integrations/jira"
)

var (
	tagConn  connFlags
	tagKeys  []string
	tagLabel string
)

// tagCmd adds a label to a list of issues, so a set of cards can be
// grouped for a later estimate or csv run.
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add a label to a list of issues",
	Run: func(cmd *cobra.Command, args []string) {
		runTag(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)

	addConnFlags(tagCmd, &tagConn)
	tagCmd.Flags().StringArrayVar(&tagKeys, "jira-key", nil, "Issue key to label (repeatable)")
	tagCmd.Flags().StringVar(&tagLabel, "jira-label", "", "Label to add")
}

func runTag(cmd *cobra.Command) {
	cfg := loadConfig()
	tagConn.apply(cfg)
	requireConnection(cfg)

	if len(tagKeys) == 0 {
		fail("no issues to label: supply at least one --jira-key")
	}
	if tagLabel == "" {
		fail("no label given: supply --jira-label")
	}

	ctx := cmd.Context()
	client := jira.NewClient(cfg.URL, cfg.Username, cfg.Token)

	for _, key := range tagKeys {
		if err := client.AddLabel(ctx, key, tagLabel); err != nil {
			fail("%v", err)
		}
	}

	fmt.Println("Done!")
}
