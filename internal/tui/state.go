package tui

// ViewState is the lifecycle stage of the table view.
type ViewState int

const (
	// ViewStateLoading is the initial state: the fetch has not completed.
	ViewStateLoading ViewState = iota
	// ViewStateReady shows the table. It is never left for Loading again.
	ViewStateReady
	// ViewStateQuitting indicates the program is exiting.
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateReady:
		return "ready"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
