package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	MangaOrange = lipgloss.Color("#FF6740")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(MangaOrange)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Navigation bar
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(MangaOrange).
			Bold(true).
			Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(MangaOrange).
			Padding(0, 1)

	NavInactiveStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Padding(0, 1)

	// SignInStyle renders the sign-in control; it has no action bound
	SignInStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateLight).
			Padding(0, 1)
)

// Content area
var (
	HeadingStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Red).
				Padding(0, 1)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	SearchBoxFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(MangaOrange).
				Padding(0, 1)
)

// Grid cell styles
var (
	GridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	GridCellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(MangaOrange).
				Padding(0, 1)
)

// Pagination styles
var (
	PageButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateLight).
			Padding(0, 1)

	PageButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MangaOrange).
		Padding(1, 2).
		Background(SlateDark)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(MangaOrange)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(MangaOrange)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(MangaOrange).
				Bold(true)
)

// Match highlight styles
var (
	MatchHighlightStyle = lipgloss.NewStyle().
		Foreground(MangaOrange).
		Bold(true)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// HighlightMatches renders s with the bytes at the given offsets emphasized.
// Offsets index into s, as returned by fuzzy matchers.
func HighlightMatches(s string, offsets []int, base lipgloss.Style) string {
	if len(offsets) == 0 {
		return base.Render(s)
	}
	marked := make(map[int]bool, len(offsets))
	for _, i := range offsets {
		marked[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if marked[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
