package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TextAreaCharLimit caps multi-line input.
const TextAreaCharLimit = 4000

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	input   textarea.Model
	label   string
	focused bool
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = TextAreaCharLimit
	ta.SetHeight(4)
	ta.SetWidth(FieldWidth)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		input: ta,
		label: label,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	return renderField(f.label, f.input.View(), "", f.focused)
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Validate always succeeds; descriptions are free text.
func (f *TextAreaField) Validate() string { return "" }

func (f *TextAreaField) Focused() bool { return f.focused }

// Value returns the text with trailing blank lines and spaces removed.
func (f *TextAreaField) Value() string { return strings.TrimRight(f.input.Value(), " \t\n") }

func (f *TextAreaField) Label() string { return f.label }
