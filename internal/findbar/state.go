package findbar

// SearchState is the navigator's position in its transition table.
type SearchState int

const (
	Idle SearchState = iota
	// ScrollSearching looks for the first match and scrolls to it.
	ScrollSearching
	// BrowseSearching prefetches the next match without scrolling.
	BrowseSearching
)

func (s SearchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case ScrollSearching:
		return "scroll-searching"
	case BrowseSearching:
		return "browse-searching"
	default:
		return "unknown"
	}
}

// Status is the short message shown next to the find bar.
type Status string

const (
	StatusNone      Status = ""
	StatusSearching Status = "searching"
	StatusNoMatch   Status = "no-match-found"
)

// Cursor holds the navigation targets. A nil field means there is no target
// in that direction.
type Cursor struct {
	Next *int
	Prev *int
}

// Sensitivity says which navigation actions are currently possible.
type Sensitivity struct {
	Next bool
	Prev bool
}
