// Package catalog implements the catalog-generation engine: filter snapshots,
// predicate composition, price/classification/stock resolution at query level,
// assembly of the single catalog query, and pagination of the result set.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is one eligible product in the generated catalog, carrying the resolved
// price, the resolved classification labels and the aggregated stock figures.
type Row struct {
	Code            int     `db:"code" json:"code"`
	Description     string  `db:"description" json:"description"`
	Reference       *string `db:"reference" json:"reference,omitempty"`
	Brand           *string `db:"brand" json:"brand,omitempty"`
	TaxCode         *string `db:"tax_code" json:"taxCode,omitempty"`
	TaxSpecies      *string `db:"tax_species" json:"taxSpecies,omitempty"`
	Characteristics *string `db:"characteristics" json:"characteristics,omitempty"`
	Image           *string `db:"image" json:"image,omitempty"`

	// Price resolved for the requested price table (0 when no candidate exists).
	Price decimal.Decimal `db:"sale_price" json:"price"`

	// One label per hierarchy tier; NULL when the product has no link in a tier.
	Segment     *string `db:"segment" json:"segment,omitempty"`
	Department  *string `db:"department" json:"department,omitempty"`
	Category    *string `db:"category" json:"category,omitempty"`
	Subcategory *string `db:"subcategory" json:"subcategory,omitempty"`

	// Per-company available stock for the three allow-listed companies, in
	// allow-list order. Available = on-hand - reserved, never clamped: a
	// negative figure signals an exception condition upstream.
	StockCompany1 float64 `db:"stock_c1" json:"-"`
	StockCompany2 float64 `db:"stock_c2" json:"-"`
	StockCompany3 float64 `db:"stock_c3" json:"-"`

	// StockFiltered sums only the selected companies' contributions.
	StockFiltered float64 `db:"stock_filtered" json:"stockFiltered"`

	// StockByCompany is derived from the positional columns after scanning,
	// keyed by company id.
	StockByCompany map[int]float64 `db:"-" json:"stockByCompany,omitempty"`

	// Display-image URLs, attached after query execution.
	ImageURL         string `db:"-" json:"imageUrl,omitempty"`
	ImageFallbackURL string `db:"-" json:"imageFallbackUrl,omitempty"`
}

// Result is the outcome of one catalog generation.
type Result struct {
	// Rows is the full ordered sequence (description ASC, code ASC).
	Rows []Row

	// Pages is populated in grid mode; nil in list mode.
	Pages []Page

	// PageCount counts product pages only; a cover page is not included.
	PageCount int

	// Empty is the explicit empty-result state for n = 0.
	Empty bool

	GeneratedAt time.Time
	ValidUntil  *time.Time
}
