package task

import (
	"math"
	"time"
)

// Summary aggregates counts over every task in a snapshot.
type Summary struct {
	Total      int              `json:"total"`
	Completed  int              `json:"completed"`
	InProgress int              `json:"in_progress"`
	Todo       int              `json:"todo"`
	Overdue    int              `json:"overdue"`
	ByPriority map[Priority]int `json:"by_priority"`
}

// Summarize counts the tasks of a snapshot at all depths.
func Summarize(s *Snapshot, now time.Time) Summary {
	sum := Summary{ByPriority: make(map[Priority]int, len(Priorities))}
	for _, t := range s.tasks {
		sum.Total++
		sum.ByPriority[t.Priority]++
		switch t.Status {
		case StatusCompleted:
			sum.Completed++
		case StatusInProgress:
			sum.InProgress++
		default:
			sum.Todo++
		}
		if t.Overdue(now) {
			sum.Overdue++
		}
	}
	return sum
}

// Incomplete returns the number of tasks not yet completed.
func (s Summary) Incomplete() int {
	return s.Total - s.Completed
}

// CompletionRate returns the completed share as a percentage in [0, 100].
// An empty tree has a rate of 0.
func (s Summary) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// RoundedRate returns CompletionRate rounded to the nearest whole percent.
func (s Summary) RoundedRate() int {
	return int(math.Round(s.CompletionRate()))
}
