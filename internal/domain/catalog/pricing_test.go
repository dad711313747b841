package catalog

import (
	"strings"
	"testing"
)

func TestPriceCaseExpr_PrecedenceOrder(t *testing.T) {
	expr := priceCaseExpr(priceCandidates)

	exception := strings.Index(expr, "e.sale_price IS NOT NULL")
	percentage := strings.Index(expr, "r.percentage IS NOT NULL")
	base := strings.Index(expr, "r.table_id = 0")

	if exception < 0 || percentage < 0 || base < 0 {
		t.Fatalf("missing candidate rule in CASE: %s", expr)
	}
	if !(exception < percentage && percentage < base) {
		t.Errorf("candidate rules out of precedence order: %s", expr)
	}
	if !strings.HasSuffix(expr, "ELSE 0 END") {
		t.Errorf("chain must default to 0, got: %s", expr)
	}
}

func TestPriceCaseExpr_PercentageDerivesFromBase(t *testing.T) {
	expr := priceCaseExpr(priceCandidates)

	if !strings.Contains(expr, "b.base_price + b.base_price * (r.percentage / 100.0)") {
		t.Errorf("percentage rule must mark up the base price: %s", expr)
	}
	// Percentage tables only derive from the base table.
	if !strings.Contains(expr, "r.origin_table_id = 0") {
		t.Errorf("percentage rule must check the origin table: %s", expr)
	}
}

func TestPricingCTEs(t *testing.T) {
	sql, args := pricingCTEs(25)

	for _, want := range []string{
		"active_rules AS",
		"base_prices AS",
		"price_candidates AS",
		"PARTITION BY table_id",
		"ORDER BY effective_date DESC NULLS LAST, version_id DESC",
		"effective_date <= now() OR effective_date IS NULL",
		"WHERE t.rn = 1",
		"WHERE r.table_id = 0",
		"WHERE p.active",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("pricing CTE missing %q", want)
		}
	}

	if len(args) != 1 {
		t.Fatalf("args count = %d, want 1", len(args))
	}
	if args[0] != 25 {
		t.Errorf("table ceiling arg = %v, want 25", args[0])
	}
}

func TestPriceColumn(t *testing.T) {
	col := priceColumn()

	if !strings.Contains(col, "COALESCE(") {
		t.Errorf("missing-candidate fallback must resolve to 0: %s", col)
	}
	if !strings.Contains(col, "pc.table_id = ?") {
		t.Errorf("requested table must be a bind parameter: %s", col)
	}
	if !strings.HasSuffix(col, "AS sale_price") {
		t.Errorf("column alias mismatch: %s", col)
	}
}
