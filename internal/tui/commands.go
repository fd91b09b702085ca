package tui

import (
	"context"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Catalog fetches result pages for a query
type Catalog interface {
	FetchPage(ctx context.Context, q domain.QueryState) (*domain.PageResult, error)
}

// URLOpener opens a URL outside the terminal
type URLOpener interface {
	Open(url string) error
}

// Command factories for async operations

// FetchPageCmd fetches the page for q on behalf of list listID.
// ctx is owned by the list so a superseded or unmounted fetch can be cancelled.
func FetchPageCmd(ctx context.Context, catalog Catalog, listID, seq int, q domain.QueryState) tea.Cmd {
	return func() tea.Msg {
		page, err := catalog.FetchPage(ctx, q)
		if err != nil {
			return PageFailedMsg{ListID: listID, Seq: seq, Err: err}
		}
		return PageLoadedMsg{ListID: listID, Seq: seq, Query: q, Page: page}
	}
}

// OpenURLCmd opens url with the configured browser
func OpenURLCmd(opener URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return ErrMsg{Err: err, Context: "opening browser"}
		}
		return BrowserOpenedMsg{URL: url}
	}
}

// ClearStatusCmd returns a command that clears the status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
