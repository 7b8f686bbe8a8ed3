package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/recview/internal/record"
	"github.com/rshade/recview/internal/schema"
	"github.com/rshade/recview/internal/store"
)

type fetcherFunc func(ctx context.Context) ([]record.Record, error)

func (f fetcherFunc) Fetch(ctx context.Context) ([]record.Record, error) { return f(ctx) }

func decode(t *testing.T, data string) []record.Record {
	t.Helper()
	records, _, err := record.DecodeRecords([]byte(data))
	require.NoError(t, err)
	return records
}

// users builds n records with ids 1..n and a nested address.
func users(t *testing.T, n int) []record.Record {
	t.Helper()
	parts := make([]string, n)
	for i := range n {
		parts[i] = fmt.Sprintf(`{"id":%d,"name":"User %02d","address":{"city":"City %d","zip":"%05d"}}`, i+1, i+1, i+1, i+1)
	}
	return decode(t, "["+strings.Join(parts, ",")+"]")
}

func staticStore(records []record.Record, err error) *store.Store {
	return store.New(fetcherFunc(func(context.Context) ([]record.Record, error) {
		return records, err
	}))
}

// loaded returns a model that has already processed the fetch result.
func loaded(t *testing.T, records []record.Record, opts ...Option) *Model {
	t.Helper()
	m := NewModel(context.Background(), staticStore(records, nil), opts...)
	m.Update(m.loadCmd()())
	require.Equal(t, ViewStateReady, m.State())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func visibleIDs(m *Model) []string {
	out := make([]string, 0, len(m.VisibleRecords()))
	for _, r := range m.VisibleRecords() {
		v, _ := r.Get("id")
		out = append(out, v.String())
	}
	return out
}

func TestModel_Loading(t *testing.T) {
	m := NewModel(context.Background(), staticStore(nil, nil))

	assert.Equal(t, ViewStateLoading, m.State())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading records...")
	assert.NotContains(t, m.View(), "Page")
}

func TestModel_LoadedTransitionsToReady(t *testing.T) {
	m := NewModel(context.Background(), staticStore(users(t, 12), nil))

	msg := m.loadCmd()()
	loadedMsg, ok := msg.(RecordsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loadedMsg.Err)
	assert.Len(t, loadedMsg.Records, 12)

	m.Update(msg)
	assert.Equal(t, ViewStateReady, m.State())
	assert.Equal(t, []schema.Column{{Title: "Id", Key: "id"}, {Title: "Name", Key: "name"}}, m.Columns())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, visibleIDs(m))

	view := m.View()
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "User 01")
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, "12 records")
}

func TestModel_FetchFailureShowsEmptyTable(t *testing.T) {
	m := NewModel(context.Background(), staticStore(nil, errors.New("connection refused")))

	msg := m.loadCmd()().(RecordsLoadedMsg)
	require.ErrorIs(t, msg.Err, store.ErrFetchFailure)

	m.Update(msg)
	assert.Equal(t, ViewStateReady, m.State())
	assert.Empty(t, m.Columns())
	assert.Empty(t, m.VisibleRecords())
	assert.Contains(t, m.View(), "No records")
	assert.Contains(t, m.View(), "0 records")
}

func TestModel_LoadedOnlyOnce(t *testing.T) {
	m := loaded(t, users(t, 3))
	m.Update(RecordsLoadedMsg{Records: users(t, 1)})
	assert.Len(t, m.VisibleRecords(), 3)
}

func TestModel_Paging(t *testing.T) {
	m := loaded(t, users(t, 12))

	steps := []struct {
		msg      tea.KeyMsg
		wantPage int
		wantIDs  []string
	}{
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, wantPage: 1, wantIDs: []string{"1", "2", "3", "4", "5"}},
		{msg: tea.KeyMsg{Type: tea.KeyRight}, wantPage: 2, wantIDs: []string{"6", "7", "8", "9", "10"}},
		{msg: runes("l"), wantPage: 3, wantIDs: []string{"11", "12"}},
		{msg: tea.KeyMsg{Type: tea.KeyRight}, wantPage: 3, wantIDs: []string{"11", "12"}},
		{msg: runes("h"), wantPage: 2, wantIDs: []string{"6", "7", "8", "9", "10"}},
	}
	for i, step := range steps {
		m.Update(step.msg)
		assert.Equal(t, step.wantPage, m.Page().CurrentPage, "step %d", i)
		assert.Equal(t, step.wantIDs, visibleIDs(m), "step %d", i)
	}
}

func TestModel_InitialPageBeyondEnd(t *testing.T) {
	m := loaded(t, users(t, 12), WithInitialPage(10))
	assert.Equal(t, 10, m.Page().CurrentPage)
	assert.Empty(t, m.VisibleRecords())
	assert.Contains(t, m.View(), "Page 10 of 3")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 10, m.Page().CurrentPage, "no page after the end")

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, m.Page().CurrentPage)
	assert.Equal(t, []string{"11", "12"}, visibleIDs(m))

	m.Update(runes("h"))
	assert.Equal(t, 2, m.Page().CurrentPage)
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, visibleIDs(m))
}

func TestModel_InitialPageBeyondEmptyCollection(t *testing.T) {
	m := loaded(t, nil, WithInitialPage(4))
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 4, m.Page().CurrentPage, "there is no page to fall back to")
}

func TestModel_CursorMovement(t *testing.T) {
	m := loaded(t, users(t, 7))

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())

	for range 10 {
		m.Update(runes("j"))
	}
	assert.Equal(t, 4, m.Cursor())

	m.Update(runes("k"))
	assert.Equal(t, 3, m.Cursor())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_ToggleExpansion(t *testing.T) {
	m := loaded(t, users(t, 12))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	second := m.VisibleRecords()[1]
	assert.True(t, m.IsExpanded(second, 1))
	assert.Equal(t, []string{
		"Record 2",
		"  Address",
		"    City: City 2",
		"    Zip: 00002",
	}, m.PanelLines())
	assert.Contains(t, m.View(), "City: City 2")

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.IsExpanded(second, 1))
	assert.Empty(t, m.PanelLines())
}

func TestModel_ExpansionSurvivesPagingAndSorting(t *testing.T) {
	m := loaded(t, users(t, 12))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first := m.VisibleRecords()[0]

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Empty(t, m.PanelLines())

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, m.IsExpanded(first, 0))
	assert.NotEmpty(t, m.PanelLines())

	// Sorting descending moves id 1 to the bottom of the page; it stays expanded.
	m.Update(runes("s"))
	m.Update(runes("o"))
	assert.Equal(t, "1", visibleIDs(m)[4])
	assert.True(t, m.IsExpanded(first, 0))
	assert.NotEmpty(t, m.PanelLines())
}

// Sorting reorders only the rows of the current page; which records a page
// holds is fixed by fetch order.
func TestModel_SortIsPageLocal(t *testing.T) {
	parts := make([]string, 10)
	for i := range 10 {
		parts[i] = fmt.Sprintf(`{"id":%d,"name":"%c"}`, i+1, 'j'-i)
	}
	m := loaded(t, decode(t, "["+strings.Join(parts, ",")+"]"),
		WithSort(SortRequest{Field: "name", Direction: schema.Ascend}))

	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, visibleIDs(m))

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, []string{"10", "9", "8", "7", "6"}, visibleIDs(m))

	m.Update(runes("o"))
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, visibleIDs(m))
}

func TestModel_SortKeys(t *testing.T) {
	m := loaded(t, users(t, 12))

	m.Update(runes("s"))
	assert.Equal(t, schema.SortState{Column: 0, Direction: schema.Ascend}, m.Sort())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, visibleIDs(m))

	m.Update(runes("o"))
	assert.Equal(t, schema.Descend, m.Sort().Direction)
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, visibleIDs(m))
	assert.Contains(t, m.View(), "sorted by Id desc")

	m.Update(runes("o"))
	assert.False(t, m.Sort().Active())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, visibleIDs(m))

	m.Update(runes("s"))
	assert.Equal(t, schema.SortState{Column: 1, Direction: schema.Ascend}, m.Sort())

	m.Update(runes("s"))
	assert.Equal(t, 0, m.Sort().Column, "column cycling wraps")
}

func TestModel_InitialSort(t *testing.T) {
	m := loaded(t, users(t, 12), WithSort(SortRequest{Field: "name", Direction: schema.Descend}))
	assert.Equal(t, schema.SortState{Column: 1, Direction: schema.Descend}, m.Sort())
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, visibleIDs(m))
}

func TestModel_InitialSortUnknownField(t *testing.T) {
	m := loaded(t, users(t, 3), WithSort(SortRequest{Field: "address", Direction: schema.Ascend}))
	assert.False(t, m.Sort().Active())
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(m))
}

func TestModel_Copy(t *testing.T) {
	var copied []string
	clip := WithClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	})

	m := loaded(t, users(t, 2), clip)
	m.Update(runes("y"))
	require.Len(t, copied, 1)
	assert.Equal(t, "Address\n  City: City 1\n  Zip: 00001", copied[0])
	assert.Contains(t, m.View(), "Copied 3 lines")

	flat := loaded(t, decode(t, `[{"id":1}]`), clip)
	flat.Update(runes("y"))
	assert.Len(t, copied, 1)
	assert.Contains(t, flat.View(), "no nested fields")
}

func TestModel_CopyFailure(t *testing.T) {
	m := loaded(t, users(t, 1), WithClipboard(func(string) error { return errors.New("no clipboard") }))
	m.Update(runes("y"))
	assert.Contains(t, m.View(), "Copy failed: no clipboard")
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := loaded(t, users(t, 1))
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, ViewStateQuitting, m.State())
		assert.Empty(t, m.View())
	}
}

func TestModel_QuitWhileLoading(t *testing.T) {
	m := NewModel(context.Background(), staticStore(nil, nil))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	m := loaded(t, users(t, 3))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), "User 01")
}

func TestViewState_String(t *testing.T) {
	assert.Equal(t, "loading", ViewStateLoading.String())
	assert.Equal(t, "ready", ViewStateReady.String())
	assert.Equal(t, "quitting", ViewStateQuitting.String())
}
