package dto

import (
	"time"

	"vitrine/internal/infrastructure/storage/postgres"
)

// RunResponse is one generation run on the wire. Query text is omitted from
// the list view to keep responses small.
type RunResponse struct {
	ID         string    `json:"id"`
	RowCount   int       `json:"rowCount"`
	DurationMs int64     `json:"durationMs"`
	Failed     bool      `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
}

// RunListResponse wraps the recent generation runs.
type RunListResponse struct {
	Runs []RunResponse `json:"runs"`
}

// FromRunLogEntry maps a stored run to its wire form.
func FromRunLogEntry(e postgres.RunLogEntry) RunResponse {
	return RunResponse{
		ID:         e.ID.String(),
		RowCount:   e.RowCount,
		DurationMs: e.DurationMs,
		Failed:     e.Failed,
		StartedAt:  e.StartedAt,
	}
}
