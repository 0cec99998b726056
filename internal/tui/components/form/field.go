package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string
	// Validate checks the current value, records the message shown under
	// the field and returns it. An empty string means the value is valid.
	Validate() string
}
