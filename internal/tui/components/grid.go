package components

import (
	"fmt"
	"strings"

	"github.com/Urdemonlord/mangagueh/internal/domain"
	"github.com/Urdemonlord/mangagueh/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Layout constants for grid
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Padding inside the border (Padding(0,1) = 1 left + 1 right)
	HorizontalPadding = 2

	// Lines of text inside each card: title and cover line
	CardContentLines = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Narrowest card interior before titles become unreadable
	MinCardWidth = 10
)

// CardHeight is the rendered height of one card row
const CardHeight = CardContentLines + BorderHeight

// Grid renders one page of catalog results as a grid of cards
type Grid struct {
	items   []domain.ResultItem
	columns int

	// Selection
	cursor    int // index into the visible (filtered) items
	rowOffset int // first visible row
	maxRows   int

	// Dimensions
	width  int
	height int

	// Server-side search text; matching titles are emphasized
	highlight string

	// Quick filter over the current page
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filtered     fuzzy.Matches // nil when no filter query
}

// NewGrid creates a new grid with the given number of columns
func NewGrid(columns int) Grid {
	if columns < 1 {
		columns = 1
	}

	ti := textinput.New()
	ti.Placeholder = "type to filter this page..."
	ti.Prompt = "f "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Grid{
		columns:     columns,
		filterInput: ti,
		maxRows:     1,
	}
}

// SetItems replaces the grid content and resets selection and filter
func (g *Grid) SetItems(items []domain.ResultItem) {
	g.items = items
	g.cursor = 0
	g.rowOffset = 0
	g.clearFilter()
}

// Items returns the unfiltered grid content
func (g Grid) Items() []domain.ResultItem {
	return g.items
}

// SetHighlight sets the search text whose fuzzy matches are emphasized
func (g *Grid) SetHighlight(text string) {
	g.highlight = strings.TrimSpace(text)
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.recalcMaxRows()
}

// Columns returns the number of cards per row
func (g Grid) Columns() int {
	return g.columns
}

// recalcMaxRows calculates how many card rows fit, accounting for the filter bar
func (g *Grid) recalcMaxRows() {
	available := g.height - ScrollIndicatorLines
	if g.filterActive {
		available--
	}
	g.maxRows = available / CardHeight
	if g.maxRows < 1 {
		g.maxRows = 1
	}
	g.ensureVisible()
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// SetCursor sets the cursor position, clamped to the visible items
func (g *Grid) SetCursor(pos int) {
	last := g.itemCount() - 1
	if last < 0 {
		g.cursor = 0
		return
	}
	g.cursor = max(0, min(pos, last))
	g.ensureVisible()
}

// Selected returns the item under the cursor
func (g Grid) Selected() (domain.ResultItem, bool) {
	count := g.itemCount()
	if count == 0 || g.cursor >= count {
		return domain.ResultItem{}, false
	}
	return g.items[g.mapIndex(g.cursor)], true
}

// Len returns the number of visible items
func (g Grid) Len() int {
	return g.itemCount()
}

// IsEmpty returns true if there are no visible items
func (g Grid) IsEmpty() bool {
	return g.itemCount() == 0
}

// ensureVisible scrolls so the cursor row is on screen
func (g *Grid) ensureVisible() {
	row := g.cursor / g.columns
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+g.maxRows {
		g.rowOffset = row - g.maxRows + 1
	}
}

// ToggleFilter activates the quick filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.recalcMaxRows()
}

// IsFiltering returns true if filter mode is active
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused (typing mode)
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (g *Grid) ClearFilter() {
	g.clearFilter()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filtered = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.recalcMaxRows()
}

// applyFilter narrows the visible items to fuzzy matches of the filter query
func (g *Grid) applyFilter() {
	query := g.filterInput.Value()
	g.filterQuery = query

	if query == "" {
		g.filtered = nil
		return
	}

	titles := make([]string, len(g.items))
	for i, item := range g.items {
		titles[i] = item.DisplayTitle
	}

	g.filtered = fuzzy.Find(query, titles)
	if g.filtered == nil {
		g.filtered = fuzzy.Matches{}
	}

	g.cursor = 0
	g.rowOffset = 0
}

func (g Grid) itemCount() int {
	if g.filtered != nil {
		return len(g.filtered)
	}
	return len(g.items)
}

// mapIndex maps a cursor position to the index in items
func (g Grid) mapIndex(i int) int {
	if g.filtered != nil && i < len(g.filtered) {
		return g.filtered[i].Index
	}
	return i
}

// matchedIndexes returns the filter match offsets for the visible position i
func (g Grid) matchedIndexes(i int) []int {
	if g.filtered != nil && i < len(g.filtered) {
		return g.filtered[i].MatchedIndexes
	}
	return nil
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles filter typing and cursor movement
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	// Handle filter input when active AND focused (typing mode)
	if g.IsFilterTyping() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				g.clearFilter()
				return g, nil
			case "enter":
				// Accept filter, blur input to allow navigation
				g.filterInput.Blur()
				return g, nil
			case "backspace":
				if g.filterInput.Value() == "" {
					g.clearFilter()
					return g, nil
				}
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	if g.filterActive && keyMsg.String() == "esc" {
		g.clearFilter()
		return g, nil
	}

	count := g.itemCount()
	if count == 0 {
		return g, nil
	}

	switch keyMsg.String() {
	case "l", "right":
		if g.cursor < count-1 {
			g.cursor++
		}
	case "h", "left":
		if g.cursor > 0 {
			g.cursor--
		}
	case "j", "down":
		if next := g.cursor + g.columns; next < count {
			g.cursor = next
		} else if g.cursor/g.columns < (count-1)/g.columns {
			// partial last row
			g.cursor = count - 1
		}
	case "k", "up":
		if g.cursor-g.columns >= 0 {
			g.cursor -= g.columns
		}
	case "g", "home":
		g.cursor = 0
	case "G", "end":
		g.cursor = count - 1
	}
	g.ensureVisible()

	return g, nil
}

// cardWidth is the interior width of one card
func (g Grid) cardWidth() int {
	w := g.width/g.columns - BorderWidth - HorizontalPadding
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

// View renders the component
func (g Grid) View() string {
	count := g.itemCount()

	var content string
	if count == 0 && g.filterActive && g.filterQuery != "" {
		content = styles.DimStyle.Render("No matches on this page")
	} else {
		content = g.renderCards(count)
	}

	if g.filterActive {
		content += "\n" + g.renderFilterBar()
	}
	return content
}

// renderCards lays out the visible rows of cards with scroll indicators
func (g Grid) renderCards(count int) string {
	if count == 0 {
		return ""
	}

	totalRows := (count + g.columns - 1) / g.columns
	endRow := min(g.rowOffset+g.maxRows, totalRows)

	var rows []string
	for r := g.rowOffset; r < endRow; r++ {
		var cards []string
		for c := 0; c < g.columns; c++ {
			i := r*g.columns + c
			if i >= count {
				break
			}
			cards = append(cards, g.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if g.rowOffset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if endRow < totalRows {
		footer = styles.DimStyle.Render("↓ more")
	}

	return header + "\n" + strings.Join(rows, "\n") + "\n" + footer
}

// renderCard renders the card at visible position i
func (g Grid) renderCard(i int) string {
	item := g.items[g.mapIndex(i)]
	selected := i == g.cursor
	width := g.cardWidth()

	title := styles.Truncate(item.DisplayTitle, width)
	base := styles.TitleStyle
	if g.highlight != "" && fuzzysearch.MatchFold(g.highlight, item.DisplayTitle) {
		base = styles.AccentStyle.Bold(true)
	}

	var titleLine string
	if offsets := g.matchedIndexes(i); len(offsets) > 0 && title == item.DisplayTitle {
		titleLine = styles.HighlightMatches(title, offsets, base)
	} else {
		titleLine = base.Render(title)
	}

	coverLine := styles.DimStyle.Render("▣ cover")
	if item.CoverImageURL == domain.PlaceholderCover {
		coverLine = styles.DimStyle.Render("□ no cover")
	}
	if selected {
		coverLine = styles.AccentStyle.Render("Read Manga ↗")
	}

	style := styles.GridCellStyle
	if selected {
		style = styles.GridCellSelectedStyle
	}
	return style.Width(width + HorizontalPadding).Render(titleLine + "\n" + coverLine)
}

// renderFilterBar renders the filter input bar
func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()

	countStr := ""
	if g.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", g.itemCount(), len(g.items)))
	}

	return input + countStr
}
