package dto

import (
	"time"

	"vitrine/internal/core/types"
	"vitrine/internal/domain/catalog"
)

// DisplayOptionsDTO mirrors catalog.DisplayOptions on the wire.
type DisplayOptionsDTO struct {
	Price   *bool `json:"price"`
	Barcode *bool `json:"barcode"`
	Stock   *bool `json:"stock"`
	TaxCode *bool `json:"taxCode"`
	Cover   *bool `json:"cover"`
}

// GenerateRequest carries the filter state for one catalog generation.
// Every field is optional: an empty object generates the full catalog.
type GenerateRequest struct {
	Description string             `json:"description"`
	PriceTable  int                `json:"priceTable"`
	Companies   []int              `json:"companies"`
	Segments    []int              `json:"segments"`
	Departments []string           `json:"departments"`
	Categories  []int              `json:"categories"`
	ValidUntil  *time.Time         `json:"validUntil"`
	Display     *DisplayOptionsDTO `json:"display"`
	ViewMode    string             `json:"viewMode"`
}

// ToSnapshot converts the request into a filter snapshot, applying the
// default display toggles for fields the caller left out.
func (r GenerateRequest) ToSnapshot() catalog.Snapshot {
	display := catalog.DisplayOptions{Price: true, Barcode: true, Stock: true, TaxCode: true}
	if r.Display != nil {
		if r.Display.Price != nil {
			display.Price = *r.Display.Price
		}
		if r.Display.Barcode != nil {
			display.Barcode = *r.Display.Barcode
		}
		if r.Display.Stock != nil {
			display.Stock = *r.Display.Stock
		}
		if r.Display.TaxCode != nil {
			display.TaxCode = *r.Display.TaxCode
		}
		if r.Display.Cover != nil {
			display.Cover = *r.Display.Cover
		}
	}

	return catalog.Snapshot{
		Description: r.Description,
		PriceTable:  r.PriceTable,
		Companies:   r.Companies,
		Segments:    r.Segments,
		Departments: r.Departments,
		Categories:  r.Categories,
		ValidUntil:  r.ValidUntil,
		Display:     display,
		ViewMode:    catalog.ViewMode(r.ViewMode),
	}
}

// RowResponse is one catalog row on the wire. Price is rendered with two
// fractional digits; the engine itself never rounds.
type RowResponse struct {
	Code            int                `json:"code"`
	Description     string             `json:"description"`
	Reference       *string            `json:"reference,omitempty"`
	Brand           *string            `json:"brand,omitempty"`
	TaxCode         *string            `json:"taxCode,omitempty"`
	TaxSpecies      *string            `json:"taxSpecies,omitempty"`
	Characteristics *string            `json:"characteristics,omitempty"`
	Price           string             `json:"price"`
	Segment         *string            `json:"segment,omitempty"`
	Department      *string            `json:"department,omitempty"`
	Category        *string            `json:"category,omitempty"`
	Subcategory     *string            `json:"subcategory,omitempty"`
	StockByCompany  map[int]float64    `json:"stockByCompany,omitempty"`
	StockFiltered   float64            `json:"stockFiltered"`
	ImageURL        string             `json:"imageUrl,omitempty"`
	ImageFallback   string             `json:"imageFallbackUrl,omitempty"`
}

// FromRow maps an engine row to its wire form.
func FromRow(row catalog.Row) RowResponse {
	return RowResponse{
		Code:            row.Code,
		Description:     row.Description,
		Reference:       row.Reference,
		Brand:           row.Brand,
		TaxCode:         row.TaxCode,
		TaxSpecies:      row.TaxSpecies,
		Characteristics: row.Characteristics,
		Price:           types.FormatMoney(row.Price),
		Segment:         row.Segment,
		Department:      row.Department,
		Category:        row.Category,
		Subcategory:     row.Subcategory,
		StockByCompany:  row.StockByCompany,
		StockFiltered:   row.StockFiltered,
		ImageURL:        row.ImageURL,
		ImageFallback:   row.ImageFallbackURL,
	}
}

// PageResponse is one rendered page.
type PageResponse struct {
	Number int           `json:"number"`
	Cover  bool          `json:"cover,omitempty"`
	Rows   []RowResponse `json:"rows"`
}

// GenerateResponse is the full generation result.
type GenerateResponse struct {
	Rows        []RowResponse  `json:"rows,omitempty"`
	Pages       []PageResponse `json:"pages,omitempty"`
	PageCount   int            `json:"pageCount"`
	Total       int            `json:"total"`
	Empty       bool           `json:"empty"`
	GeneratedAt time.Time      `json:"generatedAt"`
	ValidUntil  *time.Time     `json:"validUntil,omitempty"`
}

// FromResult maps an engine result to its wire form. Grid results carry
// pages; list results carry the flat row sequence.
func FromResult(res *catalog.Result) GenerateResponse {
	out := GenerateResponse{
		PageCount:   res.PageCount,
		Total:       len(res.Rows),
		Empty:       res.Empty,
		GeneratedAt: res.GeneratedAt,
		ValidUntil:  res.ValidUntil,
	}

	if res.Pages != nil {
		out.Pages = make([]PageResponse, 0, len(res.Pages))
		for _, page := range res.Pages {
			rows := make([]RowResponse, 0, len(page.Rows))
			for _, row := range page.Rows {
				rows = append(rows, FromRow(row))
			}
			out.Pages = append(out.Pages, PageResponse{Number: page.Number, Cover: page.Cover, Rows: rows})
		}
		return out
	}

	out.Rows = make([]RowResponse, 0, len(res.Rows))
	for _, row := range res.Rows {
		out.Rows = append(out.Rows, FromRow(row))
	}
	return out
}
