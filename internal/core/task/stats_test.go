package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tree := newTestTree(t)
	a := mustAdd(t, tree, Draft{Title: "A", Priority: PriorityHigh, DueDate: &past})
	b := mustAdd(t, tree, Draft{Title: "B", Priority: PriorityLow, DueDate: &past, ParentID: a.ID})
	c := mustAdd(t, tree, Draft{Title: "C", Priority: PriorityLow, DueDate: &future})
	mustAdd(t, tree, Draft{Title: "D", Priority: PriorityMedium, ParentID: c.ID})

	_, err := tree.Toggle(b.ID)
	require.NoError(t, err)
	_, err = tree.Edit(c.ID, StatusPatch(StatusInProgress))
	require.NoError(t, err)

	sum := Summarize(tree.Snapshot(), now)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.InProgress)
	assert.Equal(t, 2, sum.Todo)
	assert.Equal(t, 3, sum.Incomplete())
	assert.Equal(t, 1, sum.Overdue, "completed overdue subtask is not counted")
	assert.Equal(t, map[Priority]int{PriorityHigh: 1, PriorityLow: 2, PriorityMedium: 1}, sum.ByPriority)
	assert.InDelta(t, 25.0, sum.CompletionRate(), 0.001)
	assert.Equal(t, 25, sum.RoundedRate())
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(NewTree().Snapshot(), time.Now())

	assert.Equal(t, 0, sum.Total)
	assert.Zero(t, sum.CompletionRate())
	assert.Equal(t, 0, sum.RoundedRate())
}

func TestSummary_RoundedRate(t *testing.T) {
	assert.Equal(t, 67, Summary{Total: 3, Completed: 2}.RoundedRate())
	assert.Equal(t, 33, Summary{Total: 3, Completed: 1}.RoundedRate())
	assert.Equal(t, 100, Summary{Total: 2, Completed: 2}.RoundedRate())
}

func TestTask_Overdue(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "no due date", task: Task{Status: StatusTodo}, want: false},
		{name: "future", task: Task{Status: StatusTodo, DueDate: &future}, want: false},
		{name: "past", task: Task{Status: StatusTodo, DueDate: &past}, want: true},
		{name: "exactly now", task: Task{Status: StatusInProgress, DueDate: &now}, want: true},
		{name: "completed", task: Task{Status: StatusCompleted, DueDate: &past}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Overdue(now))
		})
	}
}
