package pagination

// Page defaults.
const (
	// PageSize is the fixed number of rows shown per page.
	PageSize    = 5
	DefaultPage = 1
	MinPage     = 1
)

// PageState is the position of a view within a collection.
type PageState struct {
	// CurrentPage is the 1-based page number. It may point past the last page.
	CurrentPage int
	// PageSize is the number of items per page.
	PageSize int
	// Total is the number of items in the collection.
	Total int
}

// NewPageState returns a state positioned on the first page.
func NewPageState(total int) PageState {
	return PageState{CurrentPage: DefaultPage, PageSize: PageSize, Total: total}
}

// SetPage overwrites the current page. The value is not validated; callers
// are expected to emit only valid pages.
func (s *PageState) SetPage(page int) {
	s.CurrentPage = page
}

// Bounds returns the half-open index range [start, end) of the current
// page, both clamped to Total. A page beyond the end yields start == end,
// and so does a page below MinPage.
//
//nolint:nonamedreturns // Named returns document the pair.
func (s PageState) Bounds() (start, end int) {
	size := s.PageSize
	if size <= 0 {
		size = PageSize
	}
	page := s.CurrentPage
	if page < MinPage {
		return 0, 0
	}

	start = (page - 1) * size
	end = page * size
	if start > s.Total {
		start = s.Total
	}
	if end > s.Total {
		end = s.Total
	}
	return start, end
}

// TotalPages returns ceil(Total / PageSize). An empty collection has no pages.
func (s PageState) TotalPages() int {
	size := s.PageSize
	if size <= 0 {
		size = PageSize
	}
	if s.Total <= 0 {
		return 0
	}
	pages := s.Total / size
	if s.Total%size > 0 {
		pages++
	}
	return pages
}

// IsValidPage reports whether page addresses an existing page.
func (s PageState) IsValidPage(page int) bool {
	return page >= MinPage && page <= s.TotalPages()
}

// Slice returns the items visible on the current page. The returned slice
// shares its backing array with items.
func Slice[T any](items []T, state PageState) []T {
	state.Total = len(items)
	start, end := state.Bounds()
	return items[start:end]
}
