package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// deadlineTickMsg triggers a deadline recompute. gen identifies the loop that
// scheduled it; ticks from a replaced loop are dropped.
type deadlineTickMsg struct {
	gen uint64
	at  time.Time
}

// scheduleDeadlineTick returns a command that delivers the next deadline tick
// for loop generation gen after interval.
func scheduleDeadlineTick(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return deadlineTickMsg{gen: gen, at: t}
	})
}
