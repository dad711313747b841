package options

import (
	"context"

	"vitrine/internal/core/apperror"
	"vitrine/internal/domain/catalog"
	"vitrine/pkg/logger"
)

// Repository loads the raw option lists.
type Repository interface {
	Companies(ctx context.Context) ([]Company, error)
	PriceTables(ctx context.Context) ([]PriceTable, error)
	Classifications(ctx context.Context) ([]Classification, error)
}

// Service loads filter options with per-section failure isolation: one
// failing lookup degrades its own section and leaves the others intact, and
// never blocks catalog generation.
type Service struct {
	repo   Repository
	scheme catalog.Scheme
	log    *logger.Logger
}

// NewService creates a filter options service.
func NewService(repo Repository, scheme catalog.Scheme, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		scheme: scheme,
		log:    log.WithComponent("options.service"),
	}
}

// Load fetches every option list. Failed sections come back nil and are
// named in Degraded; the error is non-nil only when every section failed.
func (s *Service) Load(ctx context.Context) (Options, error) {
	var out Options
	var lastErr error

	companies, err := s.repo.Companies(ctx)
	if err != nil {
		s.log.WithContext(ctx).Warnw("companies lookup failed", "error", err)
		out.Degraded = append(out.Degraded, "companies")
		lastErr = err
	} else {
		out.Companies = companies
	}

	tables, err := s.repo.PriceTables(ctx)
	if err != nil {
		s.log.WithContext(ctx).Warnw("price tables lookup failed", "error", err)
		out.Degraded = append(out.Degraded, "priceTables")
		lastErr = err
	} else {
		out.PriceTables = tables
	}

	classes, err := s.repo.Classifications(ctx)
	if err != nil {
		s.log.WithContext(ctx).Warnw("classifications lookup failed", "error", err)
		out.Degraded = append(out.Degraded, "classifications")
		lastErr = err
	} else {
		for i := range classes {
			classes[i].Level = levelName(s.scheme.Tier(classes[i].ID))
		}
		out.Classifications = classes
	}

	if len(out.Degraded) == 3 {
		return out, apperror.NewFilterOptionsUnavailable("all", lastErr)
	}
	return out, nil
}

func levelName(tier int) string {
	switch tier {
	case catalog.TierSegment:
		return LevelSegment
	case catalog.TierDepartment:
		return LevelDepartment
	case catalog.TierCategory:
		return LevelCategory
	default:
		return LevelSubcategory
	}
}
