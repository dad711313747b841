package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"vitrine/internal/core/apperror"
	"vitrine/pkg/logger"
)

var tracer = otel.Tracer("vitrine/catalog")

// Progress milestones for one generation.
const (
	progressIdle       = 0
	progressComposed   = 10
	progressDispatched = 30
	progressReceived   = 80
	progressComplete   = 100
)

// Service orchestrates catalog generation: snapshot the filters, assemble
// the query, execute it, decorate and paginate the rows. Progress and the
// in-flight flag are atomics so Status is safe from any goroutine while a
// generation runs.
type Service struct {
	assembler *Assembler
	executor  Executor
	recorder  RunRecorder
	images    ImageResolver
	capacity  int
	log       *logger.Logger

	generating atomic.Bool
	progress   atomic.Int32
}

// NewService creates a catalog generation service. recorder and images may
// be nil: run logging and image decoration are then skipped.
func NewService(
	assembler *Assembler,
	executor Executor,
	recorder RunRecorder,
	images ImageResolver,
	pageCapacity int,
	log *logger.Logger,
) *Service {
	if pageCapacity <= 0 {
		pageCapacity = DefaultPageCapacity
	}
	return &Service{
		assembler: assembler,
		executor:  executor,
		recorder:  recorder,
		images:    images,
		capacity:  pageCapacity,
		log:       log.WithComponent("catalog.service"),
	}
}

// Status is a point-in-time view of the generation state machine.
type Status struct {
	Generating bool `json:"generating"`
	Progress   int  `json:"progress"`
}

// Status reports whether a generation is in flight and how far along it is.
func (s *Service) Status() Status {
	return Status{
		Generating: s.generating.Load(),
		Progress:   int(s.progress.Load()),
	}
}

// Generate runs one full catalog generation for the snapshot.
//
// On query failure the previous result is discarded rather than kept stale:
// progress resets to idle and the caller gets a query failure error. The
// composed query carries no side effects, so a failed run leaves nothing to
// clean up and the next generation starts from scratch.
func (s *Service) Generate(ctx context.Context, snap Snapshot) (*Result, error) {
	snap = snap.Normalized()

	s.generating.Store(true)
	s.progress.Store(progressIdle)
	defer s.generating.Store(false)

	ctx, span := tracer.Start(ctx, "catalog.generate",
		trace.WithAttributes(
			attribute.Int("price_table", snap.PriceTable),
			attribute.Int("companies", len(snap.Companies)),
			attribute.String("view_mode", string(snap.ViewMode)),
		))
	defer span.End()

	startedAt := time.Now()

	sql, args, err := s.assembler.Build(snap)
	if err != nil {
		s.progress.Store(progressIdle)
		span.RecordError(err)
		return nil, apperror.NewValidation(err.Error())
	}
	s.progress.Store(progressComposed)

	s.log.WithContext(ctx).Debugw("catalog query composed",
		"args", len(args),
		"price_table", snap.PriceTable,
	)

	s.progress.Store(progressDispatched)
	rows, err := s.executor.Query(ctx, sql, args...)
	if err != nil {
		s.progress.Store(progressIdle)
		span.RecordError(err)
		s.recordRun(ctx, Run{SQL: sql, Duration: time.Since(startedAt), StartedAt: startedAt, Failed: true})
		return nil, apperror.NewQueryFailure(err)
	}
	s.progress.Store(progressReceived)
	span.SetAttributes(attribute.Int("rows", len(rows)))

	s.decorate(rows, snap)
	s.recordRun(ctx, Run{SQL: sql, RowCount: len(rows), Duration: time.Since(startedAt), StartedAt: startedAt})

	result := &Result{
		Rows:        rows,
		Empty:       len(rows) == 0,
		GeneratedAt: startedAt,
		ValidUntil:  snap.ValidUntil,
	}
	if snap.ViewMode == ViewModeGrid {
		result.Pages, result.PageCount = Paginate(rows, s.capacity, snap.Display.Cover)
	}

	s.progress.Store(progressComplete)
	s.log.WithContext(ctx).Infow("catalog generated",
		"rows", len(rows),
		"pages", result.PageCount,
		"duration_ms", time.Since(startedAt).Milliseconds(),
	)
	return result, nil
}

// decorate fills the derived row fields the query cannot produce: the
// per-company stock map keyed by company id, and the image URLs.
func (s *Service) decorate(rows []Row, snap Snapshot) {
	companies := s.assembler.cfg.Scope.Companies
	for i := range rows {
		row := &rows[i]
		row.StockByCompany = map[int]float64{
			companies[0]: row.StockCompany1,
			companies[1]: row.StockCompany2,
			companies[2]: row.StockCompany3,
		}
		if s.images != nil {
			row.ImageURL, row.ImageFallbackURL = s.images.Resolve(row.Code)
		}
	}
}

func (s *Service) recordRun(ctx context.Context, run Run) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		s.log.WithContext(ctx).Warnw("run log write failed", "error", err)
	}
}
