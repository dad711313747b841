package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vitrine/internal/domain/options"
)

// OptionsRepo loads the filter option lists. It implements
// options.Repository.
type OptionsRepo struct {
	pool    *Pool
	builder squirrel.StatementBuilderType
}

// NewOptionsRepo creates a filter options repository.
func NewOptionsRepo(pool *Pool) *OptionsRepo {
	return &OptionsRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Companies lists the selectable companies.
func (r *OptionsRepo) Companies(ctx context.Context) ([]options.Company, error) {
	q := r.builder.
		Select("id", "name").
		From("companies").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build companies query: %w", err)
	}

	var items []options.Company
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return items, nil
}

// PriceTables lists the selectable price tables.
func (r *OptionsRepo) PriceTables(ctx context.Context) ([]options.PriceTable, error) {
	q := r.builder.
		Select("id", "name").
		From("price_tables").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build price tables query: %w", err)
	}

	var items []options.PriceTable
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list price tables: %w", err)
	}
	return items, nil
}

// Classifications lists the selectable classification values.
func (r *OptionsRepo) Classifications(ctx context.Context) ([]options.Classification, error) {
	q := r.builder.
		Select("id", "label").
		From("classifications").
		Where(squirrel.Eq{"active": true}).
		OrderBy("label ASC", "id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build classifications query: %w", err)
	}

	var items []options.Classification
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	return items, nil
}
