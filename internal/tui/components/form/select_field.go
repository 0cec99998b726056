package form

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
)

// selectItem is the list item used by select fields.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TaskTitleStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.FormTitleStyle
		cursor = styles.IconCursor + " "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// SelectField is a single-select form field wrapping list.Model.
type SelectField struct {
	list    list.Model
	options []string
	label   string
	focused bool
}

// NewSelectField creates a single-select field from static options.
// defaultVal pre-selects the matching option if found.
func NewSelectField(label string, options []string, defaultVal string) *SelectField {
	items := make([]list.Item, len(options))
	selected := -1
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
		if opt == defaultVal {
			selected = i
		}
	}

	const maxVisible = 6
	height := max(min(len(options), maxVisible), 1)

	l := list.New(items, selectDelegate{}, FieldWidth, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.DisableQuitKeybindings()

	if selected >= 0 {
		l.Select(selected)
	}

	return &SelectField{
		list:    l,
		options: options,
		label:   label,
	}
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectField) View() string {
	return renderField(f.label, f.list.View(), "", f.focused)
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() {
	f.focused = false
}

// Validate always succeeds; the value is one of the options.
func (f *SelectField) Validate() string { return "" }

func (f *SelectField) Focused() bool { return f.focused }
func (f *SelectField) Label() string { return f.label }

func (f *SelectField) Value() string {
	item, ok := f.list.SelectedItem().(selectItem)
	if !ok || item.index < 0 || item.index >= len(f.options) {
		return ""
	}
	return f.options[item.index]
}
