package catalog

import (
	"fmt"
	"strings"
)

// Hierarchy tiers, highest first.
const (
	TierSegment     = 1
	TierDepartment  = 2
	TierCategory    = 3
	TierSubcategory = 4
)

// Scheme maps classification ids onto the four hierarchy tiers. The ids are
// deployment configuration, injected at construction rather than buried in
// query text.
type Scheme struct {
	// SegmentID is the single classification id designating the segment tier.
	SegmentID int

	// DepartmentIDs is the fixed set of department-tier classification ids.
	DepartmentIDs []int

	// CategoryLow/CategoryHigh bound the category-tier id range, inclusive.
	// Ids outside every higher tier fall through to the subcategory tier.
	CategoryLow  int
	CategoryHigh int
}

// Validate reports a misconfigured scheme.
func (s Scheme) Validate() error {
	if s.SegmentID <= 0 {
		return fmt.Errorf("classification scheme: segment id must be positive, got %d", s.SegmentID)
	}
	if len(s.DepartmentIDs) == 0 {
		return fmt.Errorf("classification scheme: at least one department id required")
	}
	if s.CategoryLow > s.CategoryHigh {
		return fmt.Errorf("classification scheme: category range [%d, %d] is inverted", s.CategoryLow, s.CategoryHigh)
	}
	return nil
}

// Tier resolves the hierarchy tier for a classification id. The rules are
// ranked: segment beats department beats category; everything else is a
// subcategory.
func (s Scheme) Tier(classID int) int {
	switch {
	case classID == s.SegmentID:
		return TierSegment
	case s.isDepartment(classID):
		return TierDepartment
	case classID >= s.CategoryLow && classID <= s.CategoryHigh:
		return TierCategory
	default:
		return TierSubcategory
	}
}

func (s Scheme) isDepartment(classID int) bool {
	for _, id := range s.DepartmentIDs {
		if id == classID {
			return true
		}
	}
	return false
}

// tierCase renders the ranked tier rules as a SQL CASE over the given column.
// The id constants become bind parameters appended to args.
func (s Scheme) tierCase(col string) (string, []any) {
	deptMarks := strings.TrimSuffix(strings.Repeat("?,", len(s.DepartmentIDs)), ",")

	expr := "CASE" +
		" WHEN " + col + " = ? THEN 1" +
		" WHEN " + col + " IN (" + deptMarks + ") THEN 2" +
		" WHEN " + col + " BETWEEN ? AND ? THEN 3" +
		" ELSE 4 END"

	args := make([]any, 0, len(s.DepartmentIDs)+3)
	args = append(args, s.SegmentID)
	for _, id := range s.DepartmentIDs {
		args = append(args, id)
	}
	args = append(args, s.CategoryLow, s.CategoryHigh)
	return expr, args
}

// classificationCTEs returns the two CTE bodies that pivot a product's
// classification links into one label per tier.
//
// class_ranked tiers every link and ranks links within each (product, tier)
// pair by ascending id, so a product with several links in one tier resolves
// deterministically to the lowest-id link. class_levels then pivots the
// rank-1 rows into segment/department/category/subcategory columns.
func (s Scheme) classificationCTEs() (string, []any) {
	tierExpr, tierArgs := s.tierCase("l.class_id")

	ranked := `class_ranked AS (
    SELECT
        l.product_code,
        c.label,
        ` + tierExpr + ` AS tier,
        ROW_NUMBER() OVER (
            PARTITION BY l.product_code, ` + tierExpr + `
            ORDER BY l.class_id ASC
        ) AS rn
    FROM class_links l
    JOIN classifications c ON c.id = l.class_id
)`

	levels := `class_levels AS (
    SELECT
        product_code,
        MAX(label) FILTER (WHERE tier = 1) AS segment,
        MAX(label) FILTER (WHERE tier = 2) AS department,
        MAX(label) FILTER (WHERE tier = 3) AS category,
        MAX(label) FILTER (WHERE tier = 4) AS subcategory
    FROM class_ranked
    WHERE rn = 1
    GROUP BY product_code
)`

	args := make([]any, 0, 2*len(tierArgs))
	args = append(args, tierArgs...)
	args = append(args, tierArgs...) // CASE repeats inside the window partition
	return ranked + ",\n" + levels, args
}
