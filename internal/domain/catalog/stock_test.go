package catalog

import (
	"reflect"
	"strings"
	"testing"
)

var testScope = StockScope{
	Companies: []int{1, 2, 4},
	Locations: []int{10100, 10400, 11200},
}

func TestStockScope_Validate(t *testing.T) {
	if err := testScope.Validate(); err != nil {
		t.Errorf("valid scope rejected: %v", err)
	}
	if err := (StockScope{Companies: []int{1, 2}, Locations: []int{1}}).Validate(); err == nil {
		t.Error("scope with two companies should be rejected")
	}
	if err := (StockScope{Companies: []int{1, 2, 4}}).Validate(); err == nil {
		t.Error("scope without locations should be rejected")
	}
}

func TestStockScope_FilterSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
		want     []int
	}{
		{"empty selection matches all", nil, []int{1, 2, 4}},
		{"subset preserved in allow-list order", []int{4, 1}, []int{1, 4}},
		{"unknown companies dropped", []int{2, 99}, []int{2}},
		{"fully unknown selection yields empty", []int{7, 8}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testScope.FilterSelection(tt.selected)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterSelection(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestStockScope_StockCTE(t *testing.T) {
	sql, args := testScope.stockCTE([]int{1, 4})

	for _, want := range []string{
		"stock_available AS",
		"s.on_hand - s.reserved",
		"AS stock_c1",
		"AS stock_c2",
		"AS stock_c3",
		"AS stock_filtered",
		"GROUP BY s.product_code",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("stock CTE missing %q", want)
		}
	}

	// Three per-company args, then filtered selection, allow-list, locations.
	if len(args) != 6 {
		t.Fatalf("args count = %d, want 6", len(args))
	}
	if !reflect.DeepEqual(args[3], []int{1, 4}) {
		t.Errorf("filtered selection arg = %v, want [1 4]", args[3])
	}
	if !reflect.DeepEqual(args[4], []int{1, 2, 4}) {
		t.Errorf("allow-list arg = %v", args[4])
	}
	if !reflect.DeepEqual(args[5], []int{10100, 10400, 11200}) {
		t.Errorf("locations arg = %v", args[5])
	}
}
