package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
)

// FieldWidth is the content width of form inputs.
const FieldWidth = 40

// TextField is a single-line text input form field.
type TextField struct {
	input      textinput.Model
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string, v FieldValidation) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = FieldWidth
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	if v.MaxLength > 0 {
		ti.CharLimit = v.MaxLength
	}

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	return &TextField{
		input:      ti,
		label:      label,
		validation: v,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.err != "" {
		f.err = f.validation.ValidateText(f.input.Value())
	}
	return f, cmd
}

func (f *TextField) View() string {
	return renderField(f.label, f.input.View(), f.err, f.focused)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Validate() string {
	f.err = f.validation.ValidateText(f.input.Value())
	return f.err
}

func (f *TextField) Focused() bool        { return f.focused }
func (f *TextField) Value() string        { return f.input.Value() }
func (f *TextField) Label() string        { return f.label }
func (f *TextField) ErrorMessage() string { return f.err }

// Label prefixes. The focused marker keeps focus visible without colour.
const (
	focusedMarker = "› "
	blurredMarker = "  "
)

// renderField draws a label, the input and an optional error message inside
// the left-border field frame.
func renderField(label, input, errMsg string, focused bool) string {
	titleStyle := styles.FormTitleBlurredStyle
	borderStyle := styles.FormFieldStyle
	marker := blurredMarker
	if focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
		marker = focusedMarker
	}

	parts := []string{titleStyle.Render(marker + label), input}
	if errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render("✗ "+errMsg))
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
