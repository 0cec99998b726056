package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/pkg/tuitest"
)

func TestConfirmModal(t *testing.T) {
	t.Run("enter confirms by default", func(t *testing.T) {
		m := NewConfirmModal("Delete task", "Delete \"A\" and 2 subtasks?")

		m, _ = m.Update(tuitest.KeyEnter())

		assert.True(t, m.Confirmed())
		assert.False(t, m.Cancelled())
	})

	t.Run("switching to cancel", func(t *testing.T) {
		m := NewConfirmModal("Delete task", "sure?")

		m, _ = m.Update(tuitest.KeyPress('l'))
		assert.False(t, m.ConfirmSelected())
		m, _ = m.Update(tuitest.KeyEnter())

		assert.True(t, m.Cancelled())
		assert.False(t, m.Confirmed())
	})

	t.Run("shortcuts", func(t *testing.T) {
		yes, _ := NewConfirmModal("t", "m").Update(tuitest.KeyPress('y'))
		no, _ := NewConfirmModal("t", "m").Update(tuitest.KeyPress('n'))
		esc, _ := NewConfirmModal("t", "m").Update(tuitest.KeyEsc())

		assert.True(t, yes.Confirmed())
		assert.True(t, no.Cancelled())
		assert.True(t, esc.Cancelled())
	})

	t.Run("view", func(t *testing.T) {
		view := tuitest.StripANSI(NewConfirmModal("Delete task", "Remove it?").Overlay(board(80, 24), 80, 24))

		assert.Contains(t, view, "Delete task")
		assert.Contains(t, view, "Remove it?")
		assert.Contains(t, view, "Confirm")
		assert.Contains(t, view, "Cancel")
	})
}

func TestHelpDialog_SkipsDisabledBindings(t *testing.T) {
	enabled := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task"))
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())

	view := tuitest.StripANSI(NewHelpDialog("Keys", []HelpDialogSection{
		{Title: "Tasks", Bindings: []key.Binding{enabled, disabled}},
	}).View())

	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "add task")
	assert.NotContains(t, view, "hidden")
}

func TestInfoDialog_RendersSectionsAndMarkdown(t *testing.T) {
	d := NewInfoDialog(
		"Write report",
		[]InfoSection{{
			Title: "Details",
			Items: []InfoItem{
				{Label: "Priority", Value: "high"},
				{Label: "Due", Value: "2026-07-01", Status: InfoStatusFail},
			},
		}},
		"Collect **numbers** first.",
		"j/k scroll  esc close",
		120,
		40,
	)

	out := tuitest.StripANSI(d.Overlay(board(120, 40), 120, 40))

	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Priority")
	assert.Contains(t, out, "2026-07-01")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "numbers")
	assert.Contains(t, out, "esc close")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "", Pad(-1))
	assert.Equal(t, "   ", Pad(3))
}

// board returns a width x height background of dots.
func board(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return strings.Join(rows, "\n")
}

func TestOverlay(t *testing.T) {
	bg := "aaaaa\nbbbbb\nccccc"

	t.Run("draws over the background", func(t *testing.T) {
		out := tuitest.StripANSI(Overlay(bg, "XY", 1, 1))
		assert.Equal(t, "aaaaa\nbXYbb\nccccc", out)
	})

	t.Run("empty foreground keeps background", func(t *testing.T) {
		assert.Equal(t, bg, Overlay(bg, "", 0, 0))
	})
}

func TestOverlayCenter_KeepsBoardVisible(t *testing.T) {
	out := tuitest.StripANSI(OverlayCenter(board(20, 5), "MODAL", 20, 5))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, ".......MODAL........", lines[2])
	for _, i := range []int{0, 1, 3, 4} {
		assert.Equal(t, strings.Repeat(".", 20), lines[i])
	}
}

func TestConfirmModal_OverlayKeepsBoard(t *testing.T) {
	out := tuitest.StripANSI(NewConfirmModal("Delete task", "Remove it?").Overlay(board(80, 24), 80, 24))
	lines := strings.Split(out, "\n")

	assert.Equal(t, strings.Repeat(".", 80), lines[0])
	assert.Contains(t, out, "Remove it?")
}
