package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Layout of the shell chrome
const (
	NavBarHeight = 2 // bar + rule
	FooterHeight = 1
	ChromeHeight = NavBarHeight + FooterHeight

	AppName   = "Manga Gueh"
	Copyright = "© 2024 MangaGueh. All rights reserved."
)

// Options configures the shell
type Options struct {
	InitialRoute string // unknown paths fall back to "/"
	List         ListOptions
	Logger       *slog.Logger
}

// Model is the main Bubble Tea model: a nav bar, the routed list and a footer.
// Exactly one List is mounted at a time; switching routes unmounts it and
// mounts a fresh one with a new ID.
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Catalog Catalog
	Opener  URLOpener

	// Routed content
	List       List
	routeIdx   int
	listOpts   ListOptions
	nextListID int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(catalog Catalog, opener URLOpener, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	idx := routeIndex(opts.InitialRoute)
	if idx < 0 {
		idx = 0
	}

	m := Model{
		State:    StateBrowsing,
		Catalog:  catalog,
		Opener:   opener,
		routeIdx: idx,
		listOpts: opts.List,
		logger:   logger,
	}
	m.mountList()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.List.Init()
}

// Route returns the active route
func (m Model) Route() Route {
	return Routes[m.routeIdx]
}

// Navigate switches to the route registered for path.
// Navigating to the active route or an unknown path does nothing.
func (m *Model) Navigate(path string) tea.Cmd {
	idx := routeIndex(path)
	if idx < 0 || idx == m.routeIdx {
		return nil
	}

	m.List.Unmount()
	m.routeIdx = idx
	m.mountList()
	m.logger.Debug("route changed", "path", path, "list", m.List.ID())
	return m.List.Init()
}

// mountList replaces the list with a fresh one for the active route
func (m *Model) mountList() {
	m.nextListID++
	m.List = NewList(m.nextListID, Routes[m.routeIdx].Filter, m.Catalog, m.listOpts)
	m.updateLayout()
}

// updateLayout sizes the list to the space between the chrome
func (m *Model) updateLayout() {
	m.List.SetSize(m.Width, max(m.Height-ChromeHeight, 0))
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case OpenDetailMsg:
		if m.Opener == nil {
			return m, nil
		}
		return m, OpenURLCmd(m.Opener, msg.Item.DetailURL)

	case BrowserOpenedMsg:
		m.StatusMsg = "Opened " + msg.URL
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ErrMsg:
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Fetch results, debounce ticks and spinner frames belong to the list
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.List.Unmount()
		return m, tea.Quit
	}

	// Any key closes help
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Text inputs get every other key
	if m.List.Capturing() {
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		m.List.Unmount()
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil
	case key.Matches(msg, Keys.RouteHome):
		return m, m.Navigate(Routes[0].Path)
	case key.Matches(msg, Keys.RoutePopular):
		return m, m.Navigate(Routes[1].Path)
	case key.Matches(msg, Keys.RouteLatest):
		return m, m.Navigate(Routes[2].Path)
	case key.Matches(msg, Keys.NextRoute):
		return m, m.Navigate(Routes[(m.routeIdx+1)%len(Routes)].Path)
	case key.Matches(msg, Keys.PrevRoute):
		return m, m.Navigate(Routes[(m.routeIdx+len(Routes)-1)%len(Routes)].Path)
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	contentHeight := max(m.Height-ChromeHeight, 0)
	content := lipgloss.NewStyle().
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(m.List.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavBar(),
		content,
		m.renderFooter(),
	)
}

// renderNavBar renders the logo, route tabs and the sign-in control
func (m Model) renderNavBar() string {
	parts := []string{styles.LogoStyle.Render(AppName)}
	for i, r := range Routes {
		if i == m.routeIdx {
			parts = append(parts, styles.NavActiveStyle.Render(r.Label))
		} else {
			parts = append(parts, styles.NavInactiveStyle.Render(r.Label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	right := styles.SignInStyle.Render("Sign In")

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	rule := styles.DimStyle.Render(strings.Repeat("─", max(m.Width, 0)))

	return bar + "\n" + rule
}

// renderFooter renders a single-line footer: status, copyright and help hint
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	center := styles.DimStyle.Render(Copyright)
	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
PAGES                           BROWSE
  1          Home                  h/j/k/l  Move between titles
  2          Popular               g/G      First / last title
  3          Latest                Enter    Read manga in browser
  Tab        Next page type        f        Filter this page
  S-Tab      Previous page type    r        Refresh

SEARCH & PAGING                 OTHER
  /          Search titles         q        Quit
  Esc        Leave search          ?        This help
  [ / PgUp   Previous page
  ] / PgDn   Next page

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
