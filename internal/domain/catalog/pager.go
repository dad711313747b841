package catalog

// DefaultPageCapacity is how many products fit on one catalog page.
const DefaultPageCapacity = 12

// Page is one rendered catalog page. A cover page has number 0 and no rows;
// product pages number from 1.
type Page struct {
	Number int   `json:"number"`
	Cover  bool  `json:"cover,omitempty"`
	Rows   []Row `json:"rows"`
}

// Paginate chunks the ordered rows into fixed-capacity pages, preserving
// order across page boundaries. With n rows the result has ceil(n/capacity)
// product pages; only the last page may be partially filled. A cover page,
// when requested, is prepended and not counted in pageCount. Zero rows yield
// zero product pages, the explicit empty state (the cover is not emitted
// for an empty catalog).
func Paginate(rows []Row, capacity int, cover bool) ([]Page, int) {
	if capacity <= 0 {
		capacity = DefaultPageCapacity
	}
	if len(rows) == 0 {
		return nil, 0
	}

	pageCount := (len(rows) + capacity - 1) / capacity
	pages := make([]Page, 0, pageCount+1)
	if cover {
		pages = append(pages, Page{Number: 0, Cover: true})
	}

	for i := 0; i < pageCount; i++ {
		lo := i * capacity
		hi := lo + capacity
		if hi > len(rows) {
			hi = len(rows)
		}
		pages = append(pages, Page{Number: i + 1, Rows: rows[lo:hi]})
	}

	return pages, pageCount
}
