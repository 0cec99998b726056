// Package notify defines transient alert messages and a bounded in-memory
// history for them.
package notify

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single alert. TaskID is set when the alert is about a
// specific task, such as a missed deadline.
type Notification struct {
	ID        int64     `json:"id"`
	TaskID    string    `json:"task_id,omitempty"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps published notifications.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context) ([]Notification, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// DefaultHistorySize is the number of notifications MemoryStore keeps.
const DefaultHistorySize = 100

// MemoryStore is a Store that keeps the most recent notifications in memory.
// Nothing survives a restart.
type MemoryStore struct {
	mu     sync.Mutex
	items  []Notification
	nextID int64
	limit  int
}

// NewMemoryStore creates a store holding at most limit notifications. A
// non-positive limit uses DefaultHistorySize.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &MemoryStore{limit: limit}
}

func (m *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	if over := len(m.items) - m.limit; over > 0 {
		m.items = slices.Delete(m.items, 0, over)
	}
	return n.ID, nil
}

// List returns the stored notifications, newest first.
func (m *MemoryStore) List(_ context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.items)
	slices.Reverse(out)
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	return nil
}

func (m *MemoryStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.items)), nil
}
