// Package notify fans board notifications out to the toast stack and keeps
// them in a history store.
package notify

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/notify"
)

// Subscriber receives each published notification.
type Subscriber func(notify.Notification)

// Bus records notifications and hands them to subscribers on the caller's
// goroutine. Publishing from Update keeps toast state on the Bubble Tea loop.
type Bus struct {
	history notify.Store
	log     zerolog.Logger
	now     func() time.Time

	mu   sync.Mutex
	subs []Subscriber
}

// NewBus creates a bus recording into history. A nil history dispatches
// without recording.
func NewBus(history notify.Store) *Bus {
	return &Bus{
		history: history,
		log:     logging.Component("notify"),
		now:     time.Now,
	}
}

// Subscribe adds fn to the receivers of later notifications.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	b.subs = append(b.subs, fn)
	b.mu.Unlock()
}

// Publish stamps n, records it and delivers it. The returned notification
// carries the history id, or zero when recording failed or is disabled.
func (b *Bus) Publish(n notify.Notification) notify.Notification {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}
	n.ID = b.record(n)

	b.mu.Lock()
	subs := slices.Clone(b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
	return n
}

func (b *Bus) record(n notify.Notification) int64 {
	if b.history == nil {
		return 0
	}
	id, err := b.history.Save(context.Background(), n)
	if err != nil {
		b.log.Error().Err(err).Str("task_id", n.TaskID).Str("message", n.Message).Msg("record notification")
		return 0
	}
	return id
}

// PublishAll publishes ns in order.
func (b *Bus) PublishAll(ns []notify.Notification) {
	for _, n := range ns {
		b.Publish(n)
	}
}

func (b *Bus) Errorf(format string, args ...any) { b.publishf(notify.LevelError, format, args...) }
func (b *Bus) Warnf(format string, args ...any)  { b.publishf(notify.LevelWarning, format, args...) }
func (b *Bus) Infof(format string, args ...any)  { b.publishf(notify.LevelInfo, format, args...) }

func (b *Bus) publishf(level notify.Level, format string, args ...any) {
	b.Publish(notify.Notification{Level: level, Message: fmt.Sprintf(format, args...)})
}

// History lists recorded notifications, newest first.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.history == nil {
		return nil, nil
	}
	return b.history.List(context.Background())
}

// Clear empties the history.
func (b *Bus) Clear() error {
	if b.history == nil {
		return nil
	}
	return b.history.Clear(context.Background())
}
