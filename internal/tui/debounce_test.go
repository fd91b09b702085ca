package tui

import "testing"

func TestDebouncer_LatestScheduleWins(t *testing.T) {
	d := newDebouncer(1, 0)

	first := d.Schedule()().(DebounceFiredMsg)
	second := d.Schedule()().(DebounceFiredMsg)

	if d.Fire(first) {
		t.Error("superseded tick fired")
	}
	if !d.Fire(second) {
		t.Fatal("latest tick did not fire")
	}
	if d.Fire(second) {
		t.Error("tick fired twice")
	}
	if d.Pending() {
		t.Error("slot still armed after firing")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := newDebouncer(1, 0)
	msg := d.Schedule()().(DebounceFiredMsg)

	d.Cancel()

	if d.Fire(msg) {
		t.Error("cancelled tick fired")
	}
	if d.Tick() != nil {
		t.Error("Tick() should be nil when disarmed")
	}
}

func TestDebouncer_ForeignOwner(t *testing.T) {
	d := newDebouncer(1, 0)
	msg := d.Schedule()().(DebounceFiredMsg)
	msg.ListID = 2

	if d.Fire(msg) {
		t.Error("tick for another list fired")
	}
	if !d.Pending() {
		t.Error("foreign tick disarmed the slot")
	}
}
