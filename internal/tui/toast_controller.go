package tui

import (
	"time"

	"github.com/colonyops/taskboard/internal/core/notify"
)

const (
	defaultToastTTL   = 5 * time.Second
	deadlineToastTTL  = 8 * time.Second
	defaultMaxToasts  = 5
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController manages the lifecycle of active toasts: push, eviction,
// TTL countdown and dismissal.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification to the toast stack. A toast about a task replaces
// any active toast for the same task. Past defaultMaxToasts the oldest toast
// is evicted.
func (c *ToastController) Push(n notify.Notification) {
	ttl := defaultToastTTL
	if n.TaskID != "" {
		ttl = deadlineToastTTL
		c.dismissTask(n.TaskID)
	}

	c.toasts = append(c.toasts, toast{notification: n, remaining: ttl})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

func (c *ToastController) dismissTask(taskID string) {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.notification.TaskID != taskID {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

// Tick decrements the remaining TTL of every toast by d and drops the
// expired ones.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest (bottom-most) toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking reports whether a toast tick is scheduled.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
