package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/pkg/tuitest"
)

func TestRenderStatsView(t *testing.T) {
	tree := task.NewTree()
	a := addTask(t, tree, task.Draft{Title: "A", Priority: task.PriorityHigh})
	addTask(t, tree, task.Draft{Title: "B", ParentID: a.ID})
	addTask(t, tree, task.Draft{Title: "C", Priority: task.PriorityLow})
	d := addTask(t, tree, task.Draft{Title: "D"})
	_, err := tree.Toggle(d.ID)
	require.NoError(t, err)

	out := tuitest.StripANSI(renderStatsView(tree.Snapshot(), renderNow, 120))

	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "1 of 4 tasks completed, 3 incomplete")
	assert.Contains(t, out, "██████████░")
}

func TestRenderStatsView_Empty(t *testing.T) {
	out := tuitest.StripANSI(renderStatsView(task.NewTree().Snapshot(), renderNow, 120))
	assert.Contains(t, out, "No tasks yet")
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", tuitest.StripANSI(renderBar(1, 2, 10)))
	assert.Equal(t, "░░░░", tuitest.StripANSI(renderBar(0, 0, 4)))
	assert.Equal(t, "████", tuitest.StripANSI(renderBar(3, 3, 4)))
}

func TestTasksByDay(t *testing.T) {
	tree := task.NewTree()
	inMonth := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	parent := addTask(t, tree, task.Draft{Title: "Parent", DueDate: &inMonth})
	addTask(t, tree, task.Draft{Title: "Child", ParentID: parent.ID, DueDate: &inMonth})
	addTask(t, tree, task.Draft{Title: "Later", DueDate: &nextMonth})
	addTask(t, tree, task.Draft{Title: "Undated"})

	byDay := tasksByDay(tree.Snapshot(), renderNow)

	require.Len(t, byDay, 1)
	require.Len(t, byDay[15], 2)
	assert.Equal(t, "Parent", byDay[15][0].Title)
	assert.Equal(t, "Child", byDay[15][1].Title)
}

func TestRenderCalendarView(t *testing.T) {
	tree := task.NewTree()
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	addTask(t, tree, task.Draft{Title: "Taxes", DueDate: &due})

	out := tuitest.StripANSI(renderCalendarView(tree.Snapshot(), renderNow))

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, out, "Fri Mar 15")
	assert.Contains(t, out, "Taxes")
	assert.Contains(t, out, "31")
}

func TestRenderCalendarView_NothingDue(t *testing.T) {
	out := tuitest.StripANSI(renderCalendarView(task.NewTree().Snapshot(), renderNow))
	assert.Contains(t, out, "Nothing due this month")
}

func TestBuildInfo_String(t *testing.T) {
	assert.Equal(t, "dev", BuildInfo{}.String())
	assert.Equal(t, "v1.2.0 (abc123)", BuildInfo{Version: "v1.2.0", Commit: "abc123"}.String())
	assert.Equal(t, "v1.2.0 (abc123, 2024-03-01)", BuildInfo{Version: "v1.2.0", Commit: "abc123", Date: "2024-03-01"}.String())
}
