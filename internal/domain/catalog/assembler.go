package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Product usage kinds eligible for the catalog: retail and resale.
var eligibleUsages = []string{"R", "V"}

// Config carries the deployment constants the assembler composes into every
// query.
type Config struct {
	Scheme Scheme
	Scope  StockScope

	// MaxPriceTable is the highest price table id the rule scan considers.
	MaxPriceTable int
}

// Validate reports a config that cannot produce a well-formed query.
func (c Config) Validate() error {
	if err := c.Scheme.Validate(); err != nil {
		return err
	}
	if err := c.Scope.Validate(); err != nil {
		return err
	}
	if c.MaxPriceTable < 0 {
		return fmt.Errorf("assembler config: max price table must not be negative, got %d", c.MaxPriceTable)
	}
	return nil
}

// Assembler composes the complete catalog query from a filter snapshot.
// Build is a pure function of the snapshot and the fixed config: the same
// snapshot always yields byte-identical SQL and an identical argument list,
// with no session or temporary state between runs.
type Assembler struct {
	cfg Config
}

// NewAssembler creates an assembler for the given deployment config.
func NewAssembler(cfg Config) (*Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Assembler{cfg: cfg}, nil
}

// Build assembles the catalog query for the snapshot.
//
// The query resolves price, classification and stock in CTEs, joins them to
// the eligible product set, applies the snapshot's predicates and orders by
// product description (code breaks ties so pagination is stable).
func (a *Assembler) Build(snap Snapshot) (string, []any, error) {
	snap = snap.Normalized()
	if snap.PriceTable > a.cfg.MaxPriceTable {
		return "", nil, fmt.Errorf("price table %d exceeds maximum %d", snap.PriceTable, a.cfg.MaxPriceTable)
	}

	pricingSQL, pricingArgs := pricingCTEs(a.cfg.MaxPriceTable)
	classSQL, classArgs := a.cfg.Scheme.classificationCTEs()
	stockSQL, stockArgs := a.cfg.Scope.stockCTE(a.cfg.Scope.FilterSelection(snap.Companies))

	withArgs := make([]any, 0, len(pricingArgs)+len(classArgs)+len(stockArgs))
	withArgs = append(withArgs, pricingArgs...)
	withArgs = append(withArgs, classArgs...)
	withArgs = append(withArgs, stockArgs...)

	withSQL := "WITH " + strings.Join([]string{pricingSQL, classSQL, stockSQL}, ",\n")

	q := squirrel.StatementBuilder.
		Select(
			"p.code",
			"p.description",
			"p.reference",
			"p.brand",
			"p.tax_code",
			"p.tax_species",
			"p.characteristics",
			"p.image",
		).
		Column(squirrel.Expr(priceColumn(), snap.PriceTable)).
		Columns(
			"cls.segment",
			"cls.department",
			"cls.category",
			"cls.subcategory",
			"COALESCE(est.stock_c1, 0) AS stock_c1",
			"COALESCE(est.stock_c2, 0) AS stock_c2",
			"COALESCE(est.stock_c3, 0) AS stock_c3",
			"COALESCE(est.stock_filtered, 0) AS stock_filtered",
		).
		PrefixExpr(squirrel.Expr(withSQL, withArgs...)).
		From("cat_products p").
		LeftJoin("class_levels cls ON cls.product_code = p.code").
		LeftJoin("stock_available est ON est.product_code = p.code").
		Where(squirrel.Eq{"p.active": true}).
		Where(squirrel.Eq{"p.ecommerce": true}).
		Where(squirrel.Eq{"p.usage_type": eligibleUsages})

	q = applyPredicates(q,
		descriptionPredicate("p.description", snap.Description),
		linkMembershipPredicate("p.code", snap.Segments),
		departmentPredicate("p.group_code", snap.Departments),
		linkMembershipPredicate("p.code", snap.Categories),
	)

	q = q.
		OrderBy("p.description ASC", "p.code ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build catalog query: %w", err)
	}
	return sql, args, nil
}
