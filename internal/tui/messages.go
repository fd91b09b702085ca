package tui

import "github.com/Urdemonlord/mangagueh/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// DebounceFiredMsg signals that a list's quiet period has elapsed
type DebounceFiredMsg struct {
	ListID int
	Gen    int
}

// PageLoadedMsg carries a completed catalog fetch
type PageLoadedMsg struct {
	ListID int
	Seq    int
	Query  domain.QueryState
	Page   *domain.PageResult
}

// PageFailedMsg carries a failed catalog fetch
type PageFailedMsg struct {
	ListID int
	Seq    int
	Err    error
}

// OpenDetailMsg asks the shell to open a title's detail page
type OpenDetailMsg struct {
	Item domain.ResultItem
}

// BrowserOpenedMsg signals that the browser was launched
type BrowserOpenedMsg struct {
	URL string
}

// StatusMsg displays a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg signals to clear the status message
type ClearStatusMsg struct{}
