package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debouncer is a single-slot trailing timer owned by one list.
// Scheduling supersedes whatever was pending; only the tick carrying the
// current generation fires.
type debouncer struct {
	owner int
	delay time.Duration
	gen   int
	armed bool
}

func newDebouncer(owner int, delay time.Duration) debouncer {
	return debouncer{owner: owner, delay: delay}
}

// Schedule arms the slot and returns the tick that will fire it
func (d *debouncer) Schedule() tea.Cmd {
	d.gen++
	d.armed = true
	return d.Tick()
}

// Tick returns the timer for the armed generation, nil when disarmed
func (d debouncer) Tick() tea.Cmd {
	if !d.armed {
		return nil
	}

	msg := DebounceFiredMsg{ListID: d.owner, Gen: d.gen}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// Cancel disarms the slot so the pending tick is ignored
func (d *debouncer) Cancel() {
	d.gen++
	d.armed = false
}

// Pending reports whether a tick is armed
func (d debouncer) Pending() bool {
	return d.armed
}

// Fire consumes msg, reporting whether it is the live tick for this slot
func (d *debouncer) Fire(msg DebounceFiredMsg) bool {
	if !d.armed || msg.ListID != d.owner || msg.Gen != d.gen {
		return false
	}
	d.armed = false
	return true
}
