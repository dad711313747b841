package catalog

import (
	"fmt"
	"strings"
)

// allowedCompanies is how many companies get a dedicated stock column in the
// result set. The scan target has one column per slot.
const allowedCompanies = 3

// StockScope fixes which companies and stock locations participate in stock
// aggregation. Records outside the scope never contribute, whatever the
// caller selected.
type StockScope struct {
	// Companies is the allow-list, in column order: the first entry feeds
	// stock_c1, the second stock_c2, the third stock_c3.
	Companies []int

	// Locations restricts aggregation to sellable stock locations.
	Locations []int
}

// Validate reports a scope the row layout cannot carry.
func (s StockScope) Validate() error {
	if len(s.Companies) != allowedCompanies {
		return fmt.Errorf("stock scope: exactly %d companies required, got %d", allowedCompanies, len(s.Companies))
	}
	if len(s.Locations) == 0 {
		return fmt.Errorf("stock scope: at least one location required")
	}
	return nil
}

// FilterSelection intersects the caller's company selection with the
// allow-list, preserving allow-list order. An empty selection matches all
// allow-listed companies.
func (s StockScope) FilterSelection(selected []int) []int {
	if len(selected) == 0 {
		return append([]int(nil), s.Companies...)
	}
	picked := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		picked[id] = struct{}{}
	}
	out := make([]int, 0, len(s.Companies))
	for _, id := range s.Companies {
		if _, ok := picked[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// stockCTE returns the CTE body aggregating available stock per product.
// Available stock is on-hand minus reserved, summed per allow-listed company
// into its positional column, plus a filtered total over the companies the
// caller actually selected. Products with no stock records in scope are
// absent from the CTE; the outer LEFT JOIN reads their figures as NULL and
// COALESCE turns them into 0.
func (s StockScope) stockCTE(selected []int) (string, []any) {
	var cols strings.Builder
	args := make([]any, 0, len(s.Companies)+3)

	for i, companyID := range s.Companies {
		cols.WriteString(fmt.Sprintf(
			"        SUM(CASE WHEN s.company_id = ? THEN s.on_hand - s.reserved ELSE 0 END) AS stock_c%d,\n", i+1))
		args = append(args, companyID)
	}

	cte := `stock_available AS (
    SELECT
        s.product_code,
` + cols.String() + `        SUM(CASE WHEN s.company_id = ANY(?) THEN s.on_hand - s.reserved ELSE 0 END) AS stock_filtered
    FROM stock_records s
    WHERE s.company_id = ANY(?)
      AND s.location_id = ANY(?)
    GROUP BY s.product_code
)`

	args = append(args, selected, s.Companies, s.Locations)
	return cte, args
}
