// Package options loads the filter option lists presented to the user:
// companies, price tables and classification values.
package options

// Company is one selectable company for stock filtering.
type Company struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// PriceTable is one selectable price table.
type PriceTable struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Classification is one selectable classification value, labeled with the
// hierarchy level it resolves to.
type Classification struct {
	ID    int    `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
	Level string `db:"-" json:"level"`
}

// Hierarchy level names exposed to callers.
const (
	LevelSegment     = "segment"
	LevelDepartment  = "department"
	LevelCategory    = "category"
	LevelSubcategory = "subcategory"
)

// Options bundles every filter option list. A section that failed to load is
// nil; Degraded names the failed sections.
type Options struct {
	Companies       []Company        `json:"companies,omitempty"`
	PriceTables     []PriceTable     `json:"priceTables,omitempty"`
	Classifications []Classification `json:"classifications,omitempty"`
	Degraded        []string         `json:"degraded,omitempty"`
}
