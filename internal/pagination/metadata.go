package pagination

// Meta contains metadata about the page currently shown.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta derives page metadata from a state.
func NewMeta(state PageState) Meta {
	size := state.PageSize
	if size <= 0 {
		size = PageSize
	}
	totalPages := state.TotalPages()

	return Meta{
		CurrentPage: state.CurrentPage,
		PageSize:    size,
		TotalPages:  totalPages,
		TotalItems:  state.Total,
		HasPrevious: state.CurrentPage > 1,
		HasNext:     state.CurrentPage < totalPages,
	}
}
