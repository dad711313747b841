package catalog

import (
	"sort"
	"time"
)

// ViewMode selects how the generated rows are presented.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// DisplayOptions toggles the optional columns and the cover page.
// Toggles affect presentation only, never which rows the query returns.
type DisplayOptions struct {
	Price   bool `json:"price"`
	Barcode bool `json:"barcode"`
	Stock   bool `json:"stock"`
	TaxCode bool `json:"taxCode"`
	Cover   bool `json:"cover"`
}

// Snapshot is an immutable capture of the filter state for one generation.
// The assembler reads a snapshot, never live state, so concurrent edits to
// filters cannot skew a generation already in flight.
type Snapshot struct {
	// Description is a case-insensitive substring match; empty matches all.
	Description string

	// PriceTable selects which price table resolves the sale price.
	// Table 0 is the base table.
	PriceTable int

	// Companies narrows the filtered stock total. Empty matches all
	// allow-listed companies.
	Companies []int

	// Segments, Departments and Categories are classification filters.
	// Each empty slice matches all.
	Segments    []int
	Departments []string
	Categories  []int

	// ValidUntil is a display-only validity date printed on the output.
	ValidUntil *time.Time

	Display  DisplayOptions
	ViewMode ViewMode
}

// DefaultSnapshot returns the initial filter state: base price table,
// first company pre-selected, every display toggle on, grid view.
func DefaultSnapshot(defaultCompany int) Snapshot {
	return Snapshot{
		PriceTable: 0,
		Companies:  []int{defaultCompany},
		Display:    DisplayOptions{Price: true, Barcode: true, Stock: true, TaxCode: true},
		ViewMode:   ViewModeGrid,
	}
}

// Normalized returns a canonical copy: selections sorted and deduplicated,
// out-of-range price table reset to the base table, view mode defaulted.
// Two snapshots with the same criteria normalize to the same value, which is
// what makes query assembly idempotent.
func (s Snapshot) Normalized() Snapshot {
	out := s
	if out.PriceTable < 0 {
		out.PriceTable = 0
	}
	if out.ViewMode != ViewModeList {
		out.ViewMode = ViewModeGrid
	}
	out.Companies = dedupInts(s.Companies)
	out.Segments = dedupInts(s.Segments)
	out.Categories = dedupInts(s.Categories)
	out.Departments = dedupStrings(s.Departments)
	return out
}

func dedupInts(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func dedupStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
