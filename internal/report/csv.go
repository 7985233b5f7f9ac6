package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/statustracker/statustracker/internal/estimate"
	"github.com/statustracker/statustracker/internal/integrations/jira"
)

// Row is one issue flattened to the CSV export columns.
type Row struct {
	Key         string
	StoryPoints *float64
	Status      string
	Link        string
}

// Flatten converts raw issues to export rows. baseURL is the instance
// root used to build browse links.
func Flatten(issues []jira.Issue, fieldIDs []string, baseURL string) []Row {
	rows := make([]Row, len(issues))
	for i, issue := range issues {
		row := Row{
			Key:  issue.Key,
			Link: fmt.Sprintf("%s/browse/%s", strings.TrimRight(baseURL, "/"), issue.Key),
		}
		if points, ok := estimate.StoryPoints(issue, fieldIDs); ok {
			row.StoryPoints = &points
		}
		if status, ok := issue.StatusCategory(); ok {
			row.Status = status
		}
		rows[i] = row
	}
	return rows
}

// WriteCSV writes the header and one record per row. Missing points
// and statuses become empty cells.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Story Points", "Status", "Link"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		points := ""
		if row.StoryPoints != nil {
			points = strconv.FormatFloat(*row.StoryPoints, 'f', -1, 64)
		}
		if err := cw.Write([]string{row.Key, points, row.Status, row.Link}); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.Key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
