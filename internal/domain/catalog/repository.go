package catalog

import (
	"context"
	"time"
)

// Executor runs a composed catalog query against the backing store.
type Executor interface {
	Query(ctx context.Context, sql string, args ...any) ([]Row, error)
}

// Run describes one completed (or failed) generation for the run log.
type Run struct {
	SQL       string
	RowCount  int
	Duration  time.Duration
	StartedAt time.Time
	Failed    bool
}

// RunRecorder persists generation runs. Recording is best-effort: a recorder
// failure never fails the generation itself.
type RunRecorder interface {
	Record(ctx context.Context, run Run) error
}

// ImageResolver builds the display-image URLs for a product code.
type ImageResolver interface {
	Resolve(code int) (primary, fallback string)
}
