package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/pkg/tuitest"
)

func TestFilterForm_KeepsCurrentValues(t *testing.T) {
	current := task.Filter{
		ShowCompleted: false,
		Priority:      task.PriorityFilter{High: true},
		Category:      "work",
		TagPattern:    "q*",
	}

	f := NewFilterForm(current, []string{"work", "home"})
	f, _ = f.Update(tuitest.Key(tea.KeyCtrlS))
	require.True(t, f.Submitted())

	assert.Equal(t, current, f.Filter())
}

func TestFilterForm_EditsSelections(t *testing.T) {
	f := NewFilterForm(task.DefaultFilter(), []string{"work", "home"})

	// completed: show -> hide
	f, _ = f.Update(tuitest.KeyDown())
	f, _ = f.Update(tuitest.KeyTab())
	// category: (any) -> work -> home
	f, _ = f.Update(tuitest.KeyDown())
	f, _ = f.Update(tuitest.KeyDown())
	f, _ = f.Update(tuitest.KeyTab())
	for _, msg := range tuitest.Type("errand*") {
		f, _ = f.Update(msg)
	}
	f, _ = f.Update(tuitest.Key(tea.KeyCtrlS))
	require.True(t, f.Submitted())

	got := f.Filter()
	assert.False(t, got.ShowCompleted)
	assert.Equal(t, "home", got.Category)
	assert.Equal(t, "errand*", got.TagPattern)
	assert.Equal(t, task.AllPriorities(), got.Priority)
}

func TestFilterForm_InvalidPatternBlocksSubmit(t *testing.T) {
	f := NewFilterForm(task.DefaultFilter(), nil)

	f, _ = f.Update(tuitest.KeyTab())
	f, _ = f.Update(tuitest.KeyTab())
	for _, msg := range tuitest.Type("[bad") {
		f, _ = f.Update(msg)
	}
	f, _ = f.Update(tuitest.Key(tea.KeyCtrlS))

	assert.False(t, f.Submitted())
	assert.Contains(t, tuitest.StripANSI(f.View()), "invalid tag pattern")
}
