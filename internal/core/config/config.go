// Package config handles loading statustracker configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultStoryPointsField is the display name Jira Cloud gives the
	// story-points custom field out of the box.
	DefaultStoryPointsField = "Story Points"

	// DefaultStoryPoints is assumed for unestimated cards unless the
	// user says otherwise.
	DefaultStoryPoints = 3.0
)

// Config is the root configuration structure. Every field can also be
// supplied or overridden on the command line; the file exists so the
// connection settings don't have to be repeated per invocation.
type Config struct {
	// URL is the Jira instance root, e.g. "https://example.atlassian.net".
	URL string `yaml:"url"`

	// Username and Token authenticate via basic auth.
	Username string `yaml:"username"`
	Token    string `yaml:"token"`

	// StoryPointsField is the display name of the story-points field on
	// this instance.
	StoryPointsField string `yaml:"story_points_field,omitempty"`

	// DefaultStoryPoints is assigned to unestimated cards when tallying.
	DefaultStoryPoints float64 `yaml:"default_story_points,omitempty"`

	// Velocity is the team's story points completed per sprint.
	Velocity float64 `yaml:"velocity,omitempty"`

	// Projects, Labels and IssueTypes narrow the issue search.
	Projects   []string `yaml:"projects,omitempty"`
	Labels     []string `yaml:"labels,omitempty"`
	IssueTypes []string `yaml:"issue_types,omitempty"`
}

// Default returns a config carrying only the built-in defaults, for
// runs where no config file exists and everything arrives via flags.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file from the given path and expands environment
// variables, so tokens can be written as "${JIRA_TOKEN}" instead of
// inline.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".statustracker.yaml",
		".statustracker.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".statustracker.yaml"),
			filepath.Join(home, ".statustracker.yml"),
		)
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.StoryPointsField == "" {
		c.StoryPointsField = DefaultStoryPointsField
	}
	if c.DefaultStoryPoints == 0 {
		c.DefaultStoryPoints = DefaultStoryPoints
	}
}
