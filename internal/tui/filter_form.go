package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/tui/components/form"
)

const (
	fieldShowCompleted = "show_completed"
	fieldTagPattern    = "tag_pattern"

	anyCategory = "(any)"
	optionShow  = "show"
	optionHide  = "hide"
)

// FilterForm edits the category, tag pattern and completed filters. The
// priority flags keep their current values; they are toggled with keys.
type FilterForm struct {
	dialog *form.Dialog
	base   task.Filter
}

func NewFilterForm(current task.Filter, categories []string) *FilterForm {
	completed := optionShow
	if !current.ShowCompleted {
		completed = optionHide
	}

	category := current.Category
	if category == "" {
		category = anyCategory
	}

	fields := []form.Field{
		form.NewSelectField("Completed tasks", []string{optionShow, optionHide}, completed),
		form.NewSelectField("Category", append([]string{anyCategory}, categories...), category),
		form.NewTextField("Tag pattern", "glob, e.g. work/*", current.TagPattern, form.FieldValidation{
			Check: func(v string) string {
				if err := (task.Filter{TagPattern: v}).Validate(); err != nil {
					return err.Error()
				}
				return ""
			},
		}),
	}

	return &FilterForm{
		dialog: form.NewDialog("Filter Tasks", fields, []string{fieldShowCompleted, fieldCategory, fieldTagPattern}),
		base:   current,
	}
}

func (f *FilterForm) Update(msg tea.Msg) (*FilterForm, tea.Cmd) {
	var cmd tea.Cmd
	f.dialog, cmd = f.dialog.Update(msg)
	return f, cmd
}

func (f *FilterForm) View() string    { return f.dialog.View() }
func (f *FilterForm) Title() string   { return f.dialog.Title }
func (f *FilterForm) Submitted() bool { return f.dialog.Submitted() }
func (f *FilterForm) Cancelled() bool { return f.dialog.Cancelled() }

// Filter returns the edited filter.
func (f *FilterForm) Filter() task.Filter {
	values := f.dialog.FormValues()

	out := f.base
	out.ShowCompleted = values[fieldShowCompleted] != optionHide
	out.Category = values[fieldCategory]
	if out.Category == anyCategory {
		out.Category = ""
	}
	out.TagPattern = strings.TrimSpace(values[fieldTagPattern])
	return out
}
