// Package deadline finds incomplete tasks whose due date has passed and turns
// them into notifications.
package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/core/notify"
	"github.com/colonyops/taskboard/internal/core/task"
)

// DefaultInterval is how often a Checker recomputes overdue notifications.
const DefaultInterval = 60 * time.Second

// Message returns the alert text for an overdue task.
func Message(title string) string {
	return fmt.Sprintf("task %q is past its due date", title)
}

// Check returns one warning per task, at any depth, that is not completed and
// whose due date is at or before now. The result is a full recompute in tree
// order; callers replace their previous set with it.
func Check(snap *task.Snapshot, now time.Time) []notify.Notification {
	out := []notify.Notification{}
	snap.Walk(snap.Roots(), func(t task.Task, _ int) bool {
		if t.Overdue(now) {
			out = append(out, notify.Notification{
				TaskID:    t.ID,
				Level:     notify.LevelWarning,
				Message:   Message(t.Title),
				CreatedAt: now,
			})
		}
		return true
	})
	return out
}

// Added returns the notifications in next whose task had no notification in
// prev. It is used to raise a toast only when a task first becomes overdue.
func Added(prev, next []notify.Notification) []notify.Notification {
	seen := make(map[string]struct{}, len(prev))
	for _, n := range prev {
		seen[n.TaskID] = struct{}{}
	}

	var added []notify.Notification
	for _, n := range next {
		if _, ok := seen[n.TaskID]; !ok {
			added = append(added, n)
		}
	}
	return added
}

// Checker periodically recomputes deadline notifications. Source is called on
// every tick so the check always sees the latest tree; Sink receives the full
// replacement set.
type Checker struct {
	Source   func() *task.Snapshot
	Sink     func([]notify.Notification)
	Interval time.Duration

	log zerolog.Logger
	now func() time.Time
}

// NewChecker creates a checker. A non-positive interval uses DefaultInterval.
func NewChecker(log zerolog.Logger, interval time.Duration, source func() *task.Snapshot, sink func([]notify.Notification)) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Checker{
		Source:   source,
		Sink:     sink,
		Interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Tick runs a single check and delivers the result.
func (c *Checker) Tick() []notify.Notification {
	found := Check(c.Source(), c.now())
	c.log.Debug().Int("overdue", len(found)).Msg("deadline check")
	c.Sink(found)
	return found
}

// Run checks once immediately and then on every interval. It blocks until the
// context is cancelled.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	c.Tick()
	for {
		select {
		case <-ctx.Done():
			c.log.Debug().Msg("deadline checker stopped")
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}
