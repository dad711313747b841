package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func testAssembler(t *testing.T) *Assembler {
	t.Helper()
	a, err := NewAssembler(Config{
		Scheme:        testScheme,
		Scope:         testScope,
		MaxPriceTable: 25,
	})
	if err != nil {
		t.Fatalf("NewAssembler failed: %v", err)
	}
	return a
}

func TestAssembler_BuildEmptySnapshot(t *testing.T) {
	a := testAssembler(t)

	sql, args, err := a.Build(Snapshot{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Structural pieces always present.
	for _, want := range []string{
		"WITH active_rules AS",
		"class_ranked AS",
		"stock_available AS",
		"FROM cat_products p",
		"LEFT JOIN class_levels cls ON cls.product_code = p.code",
		"LEFT JOIN stock_available est ON est.product_code = p.code",
		"ORDER BY p.description ASC, p.code ASC",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("query missing %q", want)
		}
	}

	// Eligibility gates apply even with no user criteria.
	for _, want := range []string{"p.active", "p.ecommerce", "p.usage_type IN"} {
		if !strings.Contains(sql, want) {
			t.Errorf("eligibility gate missing %q", want)
		}
	}

	// Empty criteria compose a match-all query: no user predicates at all.
	if strings.Contains(sql, "LIKE") {
		t.Error("empty description must not add a LIKE predicate")
	}
	if strings.Contains(sql, "EXISTS") {
		t.Error("empty classification filters must not add EXISTS predicates")
	}
	if strings.Contains(sql, "LEFT(p.group_code") {
		t.Error("empty department filter must not add a prefix predicate")
	}

	if count := strings.Count(sql, "$"); count != len(args) {
		t.Errorf("placeholder count %d does not match args count %d", count, len(args))
	}
}

func TestAssembler_BuildIsIdempotent(t *testing.T) {
	a := testAssembler(t)
	snap := Snapshot{
		Description: "sofa",
		PriceTable:  7,
		Companies:   []int{2, 1},
		Segments:    []int{100},
		Departments: []string{"101000"},
		Categories:  []int{1200, 1500},
	}

	sql1, args1, err := a.Build(snap)
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	sql2, args2, err := a.Build(snap)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	if sql1 != sql2 {
		t.Error("rebuilding the same snapshot must produce byte-identical SQL")
	}
	if !reflect.DeepEqual(args1, args2) {
		t.Error("rebuilding the same snapshot must produce identical args")
	}
}

func TestAssembler_BuildWithAllFilters(t *testing.T) {
	a := testAssembler(t)
	snap := Snapshot{
		Description: "mesa",
		PriceTable:  3,
		Companies:   []int{1, 4},
		Segments:    []int{100},
		Departments: []string{"101000", "201000"},
		Categories:  []int{1200},
	}

	sql, args, err := a.Build(snap)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !strings.Contains(sql, "UPPER(p.description) LIKE") {
		t.Error("description predicate missing")
	}
	if strings.Count(sql, "EXISTS (SELECT 1 FROM class_links fl") != 2 {
		t.Error("expected one EXISTS predicate each for segments and categories")
	}
	if !strings.Contains(sql, "LEFT(p.group_code") {
		t.Error("department prefix predicate missing")
	}
	if count := strings.Count(sql, "$"); count != len(args) {
		t.Errorf("placeholder count %d does not match args count %d", count, len(args))
	}
}

func TestAssembler_RejectsPriceTableBeyondMax(t *testing.T) {
	a := testAssembler(t)

	if _, _, err := a.Build(Snapshot{PriceTable: 26}); err == nil {
		t.Error("price table beyond the ceiling must be rejected")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Scheme: testScheme, Scope: testScope, MaxPriceTable: 25}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := valid
	bad.MaxPriceTable = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative price table ceiling should be rejected")
	}
}
