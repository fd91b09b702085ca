package domain

// PageSize is the number of titles requested per page
const PageSize = 18

// Display fallbacks
const (
	UntitledManga    = "Untitled Manga"
	PlaceholderCover = "/api/placeholder/200/300"
)

// FetchErrorMessage is the only failure text ever shown to the user
const FetchErrorMessage = "Failed to load manga. Please try again later."

// FilterMode selects the ordering a list view requests from the catalog
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterPopular
	FilterLatest
)

// String returns the mode name used in logs and config
func (f FilterMode) String() string {
	switch f {
	case FilterPopular:
		return "popular"
	case FilterLatest:
		return "latest"
	default:
		return "none"
	}
}

// Heading returns the title shown above a list in this mode
func (f FilterMode) Heading() string {
	switch f {
	case FilterPopular:
		return "Popular Manga"
	case FilterLatest:
		return "Latest Updates"
	default:
		return "Browse Manga"
	}
}

// QueryState is the user-controlled input of a list view.
// Page is 1-based.
type QueryState struct {
	SearchText string
	Page       int
	Filter     FilterMode
}

// NewQueryState returns the state a freshly mounted list starts from
func NewQueryState(filter FilterMode) QueryState {
	return QueryState{Page: 1, Filter: filter}
}

// ResultItem is a single title ready for display
type ResultItem struct {
	ID            string
	DisplayTitle  string
	CoverImageURL string
	DetailURL     string
}

// PageResult is one page of titles plus the catalog-wide match count
type PageResult struct {
	Items      []ResultItem
	Total      int
	TotalPages int
}

// FetchStatus drives which of the loading, error and grid branches renders
type FetchStatus int

const (
	StatusIdle FetchStatus = iota
	StatusLoading
	StatusError
)

// String returns a human-readable status name
func (s FetchStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}
