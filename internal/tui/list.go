package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/domain"
	"github.com/Urdemonlord/mangagueh/internal/tui/components"
	"github.com/Urdemonlord/mangagueh/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Layout of the list chrome around the grid
const (
	headingLines    = 2 // heading + margin
	searchBoxLines  = 3 // bordered single-line input
	paginationLines = 2 // blank + controls
	detailLines     = 1 // selected title's links
	maxSearchWidth  = 60
)

// ListOptions configures a List
type ListOptions struct {
	Debounce          time.Duration
	GridColumns       int
	ResetPageOnChange bool
}

// List browses one filter mode of the catalog: search, paging and a card grid.
// Every change to the query schedules a debounced fetch; only the response to
// the most recently issued fetch is applied.
type List struct {
	id        int
	catalog   Catalog
	query     domain.QueryState
	resetPage bool

	debounce debouncer
	seq      int                // sequence number of the latest issued fetch
	cancel   context.CancelFunc // cancels the in-flight fetch
	mounted  bool

	status     domain.FetchStatus
	errMsg     string
	totalPages int

	search  textinput.Model
	grid    components.Grid
	spinner spinner.Model

	width  int
	height int
}

// NewList creates a mounted list for filter. The first fetch is scheduled
// and fires once the tick returned by Init elapses.
func NewList(id int, filter domain.FilterMode, catalog Catalog, opts ListOptions) List {
	ti := textinput.New()
	ti.Placeholder = "Search manga..."
	ti.Prompt = "⌕ "
	ti.PromptStyle = styles.AccentStyle
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	l := List{
		id:        id,
		catalog:   catalog,
		query:     domain.NewQueryState(filter),
		resetPage: opts.ResetPageOnChange,
		debounce:  newDebouncer(id, opts.Debounce),
		mounted:   true,
		status:    domain.StatusIdle,
		search:    ti,
		grid:      components.NewGrid(opts.GridColumns),
		spinner:   sp,
	}
	l.debounce.Schedule()
	return l
}

// Init returns the tick for the initial fetch
func (l List) Init() tea.Cmd {
	return l.debounce.Tick()
}

// ID returns the mount identifier
func (l List) ID() int {
	return l.id
}

// Query returns the current query state
func (l List) Query() domain.QueryState {
	return l.query
}

// Status returns the fetch status
func (l List) Status() domain.FetchStatus {
	return l.status
}

// ErrorMessage returns the user-facing error, empty unless Status is StatusError
func (l List) ErrorMessage() string {
	return l.errMsg
}

// Items returns the titles of the current page
func (l List) Items() []domain.ResultItem {
	return l.grid.Items()
}

// TotalPages returns the page count of the last successful fetch
func (l List) TotalPages() int {
	return l.totalPages
}

// Capturing reports whether keystrokes are going to a text input
func (l List) Capturing() bool {
	return l.search.Focused() || l.grid.IsFilterTyping()
}

// SetSize updates the list dimensions
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.search.Width = max(min(width, maxSearchWidth)-8, 10)
	l.grid.SetSize(width, height-headingLines-searchBoxLines-paginationLines-detailLines)
}

// Unmount cancels the pending debounce and any in-flight fetch.
// Messages for this list that arrive afterwards are ignored.
func (l *List) Unmount() {
	l.debounce.Cancel()
	l.cancelFetch()
	l.seq++
	l.mounted = false
}

// Update handles messages
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	if !l.mounted {
		return l, nil
	}

	switch msg := msg.(type) {
	case DebounceFiredMsg:
		if !l.debounce.Fire(msg) {
			return l, nil
		}
		return l, l.startFetch()

	case PageLoadedMsg:
		if msg.ListID != l.id || msg.Seq != l.seq {
			return l, nil
		}
		l.cancelFetch()
		l.status = domain.StatusIdle
		l.errMsg = ""
		l.totalPages = msg.Page.TotalPages
		l.grid.SetItems(msg.Page.Items)
		l.grid.SetHighlight(msg.Query.SearchText)
		return l, nil

	case PageFailedMsg:
		if msg.ListID != l.id || msg.Seq != l.seq {
			return l, nil
		}
		l.cancelFetch()
		l.status = domain.StatusError
		l.errMsg = domain.FetchErrorMessage
		l.grid.SetItems(nil)
		return l, nil

	case spinner.TickMsg:
		if l.status != domain.StatusLoading {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l List) handleKey(msg tea.KeyMsg) (List, tea.Cmd) {
	if l.search.Focused() {
		if key.Matches(msg, Keys.Escape) || msg.String() == "enter" {
			l.search.Blur()
			return l, nil
		}
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(msg)
		return l, tea.Batch(cmd, l.setSearchText(l.search.Value()))
	}

	if l.grid.IsFilterTyping() {
		var cmd tea.Cmd
		l.grid, cmd = l.grid.Update(msg)
		return l, cmd
	}

	switch {
	case key.Matches(msg, Keys.Search):
		return l, l.search.Focus()
	case key.Matches(msg, Keys.PrevPage):
		return l, l.prevPage()
	case key.Matches(msg, Keys.NextPage):
		return l, l.nextPage()
	case key.Matches(msg, Keys.Filter):
		l.grid.ToggleFilter()
		return l, textinput.Blink
	case key.Matches(msg, Keys.Refresh):
		return l, l.debounce.Schedule()
	case key.Matches(msg, Keys.Open):
		item, ok := l.grid.Selected()
		if !ok {
			return l, nil
		}
		return l, func() tea.Msg { return OpenDetailMsg{Item: item} }
	}

	var cmd tea.Cmd
	l.grid, cmd = l.grid.Update(msg)
	return l, cmd
}

// setSearchText records new search text and schedules a fetch if it changed
func (l *List) setSearchText(text string) tea.Cmd {
	if text == l.query.SearchText {
		return nil
	}
	l.query.SearchText = text
	if l.resetPage {
		l.query.Page = 1
	}
	return l.debounce.Schedule()
}

// prevPage moves back one page; a no-op on page 1
func (l *List) prevPage() tea.Cmd {
	page := domain.PrevPage(l.query.Page)
	if page == l.query.Page {
		return nil
	}
	l.query.Page = page
	return l.debounce.Schedule()
}

// nextPage moves forward one page; a no-op whenever Next is disabled
func (l *List) nextPage() tea.Cmd {
	if !domain.CanNext(l.query.Page, l.totalPages) {
		return nil
	}
	l.query.Page = domain.NextPage(l.query.Page, l.totalPages)
	return l.debounce.Schedule()
}

// startFetch supersedes any in-flight fetch and issues one for the current query
func (l *List) startFetch() tea.Cmd {
	l.cancelFetch()
	l.seq++

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.status = domain.StatusLoading
	l.errMsg = ""

	return tea.Batch(
		FetchPageCmd(ctx, l.catalog, l.id, l.seq, l.query),
		l.spinner.Tick,
	)
}

// cancelFetch releases the current fetch context; a fetch still in flight is aborted
func (l *List) cancelFetch() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// View renders the list
func (l List) View() string {
	heading := styles.HeadingStyle.Render(l.query.Filter.Heading())

	boxStyle := styles.SearchBoxStyle
	if l.search.Focused() {
		boxStyle = styles.SearchBoxFocusedStyle
	}
	searchBox := boxStyle.Width(max(min(l.width, maxSearchWidth)-2, 14)).Render(l.search.View())

	var body string
	switch l.status {
	case domain.StatusLoading:
		body = l.spinner.View() + " " + styles.DimStyle.Render("Loading manga...")
	case domain.StatusError:
		body = styles.ErrorBannerStyle.Render(l.errMsg)
	default:
		body = l.grid.View()
		if detail := l.renderDetail(); detail != "" {
			body += "\n" + detail
		}
	}

	bodyHeight := max(l.height-headingLines-searchBoxLines-paginationLines, 1)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		searchBox,
		body,
		"",
		l.renderPagination(),
	)
}

// renderDetail renders the cover and detail links of the selected title
func (l List) renderDetail() string {
	item, ok := l.grid.Selected()
	if !ok {
		return ""
	}
	line := "cover " + item.CoverImageURL + "  ·  " + item.DetailURL
	return styles.DimStyle.Render(styles.Truncate(line, l.width))
}

// renderPagination renders the Previous / Page N of M / Next controls
func (l List) renderPagination() string {
	prev := styles.PageButtonDisabledStyle.Render("‹ Previous")
	if domain.CanPrev(l.query.Page) {
		prev = styles.PageButtonStyle.Render("‹ Previous")
	}
	next := styles.PageButtonDisabledStyle.Render("Next ›")
	if domain.CanNext(l.query.Page, l.totalPages) {
		next = styles.PageButtonStyle.Render("Next ›")
	}

	label := styles.SubtitleStyle.Render(fmt.Sprintf(" Page %d of %d ", l.query.Page, l.totalPages))
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, label, next)
}
