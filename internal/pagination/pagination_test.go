package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		want  []int
	}{
		{name: "first page", total: 12, page: 1, want: []int{0, 1, 2, 3, 4}},
		{name: "middle page", total: 12, page: 2, want: []int{5, 6, 7, 8, 9}},
		{name: "short last page", total: 12, page: 3, want: []int{10, 11}},
		{name: "beyond last page", total: 12, page: 5, want: []int{}},
		{name: "exact multiple", total: 10, page: 2, want: []int{5, 6, 7, 8, 9}},
		{name: "empty collection", total: 0, page: 1, want: []int{}},
		{name: "page zero", total: 12, page: 0, want: []int{}},
		{name: "negative page", total: 12, page: -1, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewPageState(tt.total)
			state.SetPage(tt.page)
			assert.Equal(t, tt.want, Slice(items(tt.total), state))
		})
	}
}

func TestPageState_Bounds(t *testing.T) {
	state := PageState{CurrentPage: 3, PageSize: 5, Total: 12}
	start, end := state.Bounds()
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	state.SetPage(4)
	start, end = state.Bounds()
	assert.Equal(t, start, end)
}

func TestPageState_SetPageDoesNotValidate(t *testing.T) {
	state := NewPageState(3)
	state.SetPage(42)
	assert.Equal(t, 42, state.CurrentPage)
	assert.False(t, state.IsValidPage(42))
}

func TestPageState_TotalPages(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{12, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewPageState(tt.total).TotalPages(), "total=%d", tt.total)
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(PageState{CurrentPage: 2, PageSize: 5, Total: 12})
	assert.Equal(t, Meta{
		CurrentPage: 2,
		PageSize:    5,
		TotalPages:  3,
		TotalItems:  12,
		HasPrevious: true,
		HasNext:     true,
	}, meta)

	last := NewMeta(PageState{CurrentPage: 3, PageSize: 5, Total: 12})
	assert.False(t, last.HasNext)

	empty := NewMeta(NewPageState(0))
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrevious)
	assert.False(t, empty.HasNext)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty", input: "", wantField: "", wantOrder: "asc"},
		{name: "field only", input: "name", wantField: "name", wantOrder: "asc"},
		{name: "field and desc", input: "id:desc", wantField: "id", wantOrder: "desc"},
		{name: "upper case order", input: "id:DESC", wantField: "id", wantOrder: "desc"},
		{name: "spaces trimmed", input: " email : asc ", wantField: "email", wantOrder: "asc"},
		{name: "bad order", input: "id:up", wantErr: ErrInvalidSortOrder},
		{name: "empty field", input: ":asc", wantErr: ErrEmptySortField},
		{name: "too many parts", input: "a:b:c", wantErr: ErrInvalidSortFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestValidatePage(t *testing.T) {
	require.NoError(t, ValidatePage(1))
	require.ErrorIs(t, ValidatePage(0), ErrInvalidPage)
}
