package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"vitrine/internal/domain/catalog"
	"vitrine/pkg/logger"
)

var tracer = otel.Tracer("vitrine/postgres")

// CatalogExecutor runs composed catalog queries on the connection pool.
// It implements catalog.Executor.
type CatalogExecutor struct {
	pool *Pool
	log  *logger.Logger
}

// NewCatalogExecutor creates a catalog query executor.
func NewCatalogExecutor(pool *Pool, log *logger.Logger) *CatalogExecutor {
	return &CatalogExecutor{
		pool: pool,
		log:  log.WithComponent("postgres.executor"),
	}
}

// Query executes the query and scans the result set into catalog rows.
func (e *CatalogExecutor) Query(ctx context.Context, sql string, args ...any) ([]catalog.Row, error) {
	ctx, span := tracer.Start(ctx, "catalog.query")
	defer span.End()

	start := time.Now()
	var rows []catalog.Row
	if err := pgxscan.Select(ctx, e.pool, &rows, sql, args...); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("execute catalog query: %w", err)
	}

	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	e.log.WithContext(ctx).Debugw("catalog query executed",
		"rows", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}
