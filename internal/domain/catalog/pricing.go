package catalog

import "strings"

// priceRule is one arm of the price precedence chain: a SQL condition and the
// value expression used when the condition holds. Rules are evaluated in
// slice order; the first hit wins.
type priceRule struct {
	name string
	when string
	then string
}

// priceCandidates is the resolution order for a product's sale price within
// one price table:
//
//  1. a manual exception registered for the product on that table's
//     active version wins outright;
//  2. a percentage table derived from the base table marks the price up
//     (or down, the percentage may be negative) from the base price;
//  3. the base table itself answers with the base price;
//  4. no candidate resolves to price 0, which downstream treats as
//     price-on-request, never as free merchandise.
var priceCandidates = []priceRule{
	{
		name: "manual exception",
		when: "e.sale_price IS NOT NULL",
		then: "e.sale_price",
	},
	{
		name: "percentage of base",
		when: "r.percentage IS NOT NULL AND r.origin_table_id = 0 AND b.base_price IS NOT NULL",
		then: "b.base_price + b.base_price * (r.percentage / 100.0)",
	},
	{
		name: "base table",
		when: "r.table_id = 0",
		then: "b.base_price",
	},
}

// priceCaseExpr renders the precedence chain as a single CASE expression.
func priceCaseExpr(rules []priceRule) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, rule := range rules {
		sb.WriteString(" WHEN ")
		sb.WriteString(rule.when)
		sb.WriteString(" THEN ")
		sb.WriteString(rule.then)
	}
	sb.WriteString(" ELSE 0 END")
	return sb.String()
}

// pricingCTEs returns the three CTE bodies that resolve prices for every
// table up to maxTable.
//
// active_rules keeps exactly one version per price table: the latest
// effective-dated version not in the future, with undated versions always
// eligible. Ties on effective date break on the higher version id so the
// pick is deterministic.
//
// base_prices carries each product's price on the base table's active
// version; the other tables derive from it.
//
// price_candidates crosses every active product with every active rule and
// resolves the chain above into one final_price per (product, table).
func pricingCTEs(maxTable int) (string, []any) {
	activeRules := `active_rules AS (
    SELECT t.table_id, t.version_id, t.percentage, t.origin_table_id
    FROM (
        SELECT
            table_id,
            version_id,
            percentage,
            origin_table_id,
            ROW_NUMBER() OVER (
                PARTITION BY table_id
                ORDER BY effective_date DESC NULLS LAST, version_id DESC
            ) AS rn
        FROM price_rules
        WHERE table_id <= ?
          AND (effective_date <= now() OR effective_date IS NULL)
    ) t
    WHERE t.rn = 1
)`

	basePrices := `base_prices AS (
    SELECT e.product_code, e.sale_price AS base_price
    FROM price_exceptions e
    JOIN active_rules r ON r.version_id = e.version_id
    WHERE r.table_id = 0
)`

	candidates := `price_candidates AS (
    SELECT
        p.code AS product_code,
        r.table_id,
        ` + priceCaseExpr(priceCandidates) + ` AS final_price
    FROM cat_products p
    CROSS JOIN active_rules r
    LEFT JOIN base_prices b ON b.product_code = p.code
    LEFT JOIN price_exceptions e
        ON e.product_code = p.code AND e.version_id = r.version_id
    WHERE p.active
)`

	return activeRules + ",\n" + basePrices + ",\n" + candidates, []any{maxTable}
}

// priceColumn is the scalar lookup of the requested table's resolved price.
// COALESCE covers products with no candidate row at all.
func priceColumn() string {
	return "COALESCE((SELECT pc.final_price FROM price_candidates pc" +
		" WHERE pc.product_code = p.code AND pc.table_id = ? LIMIT 1), 0) AS sale_price"
}
