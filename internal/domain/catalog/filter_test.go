package catalog

import (
	"reflect"
	"testing"
)

func TestSnapshot_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Snapshot
		want Snapshot
	}{
		{
			name: "empty snapshot gets grid view",
			in:   Snapshot{},
			want: Snapshot{ViewMode: ViewModeGrid},
		},
		{
			name: "negative price table resets to base",
			in:   Snapshot{PriceTable: -3},
			want: Snapshot{PriceTable: 0, ViewMode: ViewModeGrid},
		},
		{
			name: "selections are sorted and deduplicated",
			in: Snapshot{
				Companies:   []int{4, 1, 4, 2},
				Segments:    []int{100, 100},
				Categories:  []int{2000, 1000},
				Departments: []string{"201000", "101000", "201000"},
			},
			want: Snapshot{
				Companies:   []int{1, 2, 4},
				Segments:    []int{100},
				Categories:  []int{1000, 2000},
				Departments: []string{"101000", "201000"},
				ViewMode:    ViewModeGrid,
			},
		},
		{
			name: "list view is preserved",
			in:   Snapshot{ViewMode: ViewModeList},
			want: Snapshot{ViewMode: ViewModeList},
		},
		{
			name: "unknown view mode falls back to grid",
			in:   Snapshot{ViewMode: ViewMode("table")},
			want: Snapshot{ViewMode: ViewModeGrid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalized mismatch\nwant: %+v\ngot:  %+v", tt.want, got)
			}
		})
	}
}

func TestSnapshot_NormalizedIsStable(t *testing.T) {
	snap := Snapshot{
		Description: "mesa",
		Companies:   []int{2, 1},
		Categories:  []int{1500, 1200},
	}

	first := snap.Normalized()
	second := first.Normalized()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not idempotent\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot(1)

	if snap.PriceTable != 0 {
		t.Errorf("default price table = %d, want 0", snap.PriceTable)
	}
	if !reflect.DeepEqual(snap.Companies, []int{1}) {
		t.Errorf("default companies = %v, want [1]", snap.Companies)
	}
	if snap.ViewMode != ViewModeGrid {
		t.Errorf("default view mode = %q, want grid", snap.ViewMode)
	}
	if !snap.Display.Price || !snap.Display.Barcode || !snap.Display.Stock || !snap.Display.TaxCode {
		t.Errorf("default display toggles should all be on, got %+v", snap.Display)
	}
	if snap.Display.Cover {
		t.Error("cover should be off by default")
	}
}
