// Package commands implements the statustracker CLI surface.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statustracker/statustracker/internal/core/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command; every subcommand hangs off it.
var rootCmd = &cobra.Command{
	Use:   "statustracker",
	Short: "Estimate time left to complete a project",
	Long: `A suite of utilities to estimate time left to complete a project,
based on team velocity and estimated story points in your issue tracker.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .statustracker.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}

// fail reports a fatal error and stops the process.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// loadConfig resolves the optional config file; flags are layered on
// top by the caller.
func loadConfig() *config.Config {
	path := config.FindConfigPath(cfgFile)
	if path == "" {
		if cfgFile != "" {
			fail("config file not found: %s", cfgFile)
		}
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fail("%v", err)
	}
	if verbose {
		fmt.Printf("Loaded config from %s\n", path)
	}
	return cfg
}

// connFlags carry the Jira connection settings shared by every
// subcommand that talks to the tracker.
type connFlags struct {
	url      string
	username string
	token    string
}

func addConnFlags(cmd *cobra.Command, f *connFlags) {
	cmd.Flags().StringVar(&f.url, "jira-url", "", "Jira instance URL, e.g. https://example.atlassian.net")
	cmd.Flags().StringVar(&f.username, "jira-username", "", "Jira account email for basic auth")
	cmd.Flags().StringVar(&f.token, "jira-token", "", "Jira API token")
}

func (f *connFlags) apply(cfg *config.Config) {
	if f.url != "" {
		cfg.URL = f.url
	}
	if f.username != "" {
		cfg.Username = f.username
	}
	if f.token != "" {
		cfg.Token = f.token
	}
}

// searchFlags extend the connection settings with the issue filters
// shared by estimate and csv.
type searchFlags struct {
	connFlags
	storyPointsField string
	projects         []string
	labels           []string
	issueTypes       []string
}

func addSearchFlags(cmd *cobra.Command, f *searchFlags) {
	addConnFlags(cmd, &f.connFlags)
	cmd.Flags().StringVar(&f.storyPointsField, "jira-story-points-field", "", "Display name of the story points field")
	cmd.Flags().StringArrayVar(&f.projects, "jira-project", nil, "Project to search (repeatable)")
	cmd.Flags().StringArrayVar(&f.labels, "jira-label", nil, "Label to search (repeatable)")
	cmd.Flags().StringArrayVar(&f.issueTypes, "jira-issue-type", nil, "Issue type to include (repeatable)")
}

func (f *searchFlags) apply(cfg *config.Config) {
	f.connFlags.apply(cfg)
	if f.storyPointsField != "" {
		cfg.StoryPointsField = f.storyPointsField
	}
	if len(f.projects) > 0 {
		cfg.Projects = f.projects
	}
	if len(f.labels) > 0 {
		cfg.Labels = f.labels
	}
	if len(f.issueTypes) > 0 {
		cfg.IssueTypes = f.issueTypes
	}
}

func requireConnection(cfg *config.Config) {
	if cfg.URL == "" || cfg.Username == "" || cfg.Token == "" {
		fail("missing Jira connection settings: provide --jira-url, --jira-username and --jira-token, or a config file")
	}
}
