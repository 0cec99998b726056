package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/tui/components/form"
)

// TaskFormMode selects what a submitted task form does.
type TaskFormMode int

const (
	TaskFormCreate TaskFormMode = iota
	TaskFormEdit
	TaskFormSubtask
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldDue         = "due"
	fieldPriority    = "priority"
	fieldTags        = "tags"
	fieldCategory    = "category"

	noCategory    = "(none)"
	maxTitleChars = 200
)

// TaskForm collects a task.Draft through a form dialog.
type TaskForm struct {
	Mode TaskFormMode
	// TargetID is the edited task in edit mode and the parent in subtask
	// mode.
	TargetID string

	dialog     *form.Dialog
	dateFormat string

	// keptDue is the edited task's due date, reused while the field still
	// shows its formatted value so a time of day finer than dateFormat
	// survives the edit.
	keptDue     *time.Time
	keptDueText string
}

// NewTaskForm builds the form. In edit mode the fields start from existing.
// In subtask mode existing is the parent. New tasks default to medium
// priority.
func NewTaskForm(mode TaskFormMode, existing task.Task, categories []string, dateFormat string) *TaskForm {
	var (
		title    string
		target   string
		defaults = task.Draft{Priority: task.PriorityMedium}
	)

	switch mode {
	case TaskFormEdit:
		title = "Edit Task"
		target = existing.ID
		defaults = task.Draft{
			Title:       existing.Title,
			Description: existing.Description,
			DueDate:     existing.DueDate,
			Priority:    existing.Priority,
			Tags:        existing.Tags,
			Category:    existing.Category,
		}
	case TaskFormSubtask:
		title = fmt.Sprintf("New Subtask of %q", existing.Title)
		target = existing.ID
	default:
		title = "New Task"
	}

	due := ""
	if defaults.DueDate != nil {
		due = defaults.DueDate.Format(dateFormat)
	}

	priorities := make([]string, 0, len(task.Priorities))
	for _, p := range task.Priorities {
		priorities = append(priorities, string(p))
	}

	categoryOptions := append([]string{noCategory}, categories...)
	category := defaults.Category
	if category == "" {
		category = noCategory
	}

	fields := []form.Field{
		form.NewTextField("Title", "What needs doing?", defaults.Title, form.FieldValidation{
			Required:  true,
			MaxLength: maxTitleChars,
		}),
		form.NewTextAreaField("Description", "Details (markdown)", defaults.Description),
		form.NewTextField("Due date", dateFormat, due, form.FieldValidation{
			Check: func(v string) string {
				if _, err := parseDueDate(v, dateFormat); err != nil {
					return fmt.Sprintf("expected a date like %s", dateFormat)
				}
				return ""
			},
		}),
		form.NewSelectField("Priority", priorities, string(defaults.Priority)),
		form.NewTextField("Tags", "comma, separated", task.FormatTags(defaults.Tags), form.FieldValidation{}),
		form.NewSelectField("Category", categoryOptions, category),
	}

	return &TaskForm{
		Mode:        mode,
		TargetID:    target,
		dialog:      form.NewDialog(title, fields, []string{fieldTitle, fieldDescription, fieldDue, fieldPriority, fieldTags, fieldCategory}),
		dateFormat:  dateFormat,
		keptDue:     defaults.DueDate,
		keptDueText: due,
	}
}

func parseDueDate(v, layout string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	due, err := time.ParseInLocation(layout, v, time.Local)
	if err != nil {
		return nil, err
	}
	return &due, nil
}

// Update forwards a message to the dialog.
func (f *TaskForm) Update(msg tea.Msg) (*TaskForm, tea.Cmd) {
	var cmd tea.Cmd
	f.dialog, cmd = f.dialog.Update(msg)
	return f, cmd
}

func (f *TaskForm) View() string    { return f.dialog.View() }
func (f *TaskForm) Title() string   { return f.dialog.Title }
func (f *TaskForm) Submitted() bool { return f.dialog.Submitted() }
func (f *TaskForm) Cancelled() bool { return f.dialog.Cancelled() }

// Draft converts the submitted values. In subtask mode the draft's parent is
// the target task.
func (f *TaskForm) Draft() (task.Draft, error) {
	values := f.dialog.FormValues()

	var due *time.Time
	if f.keptDue != nil && strings.TrimSpace(values[fieldDue]) == f.keptDueText {
		kept := *f.keptDue
		due = &kept
	} else {
		parsed, err := parseDueDate(values[fieldDue], f.dateFormat)
		if err != nil {
			return task.Draft{}, fmt.Errorf("due date: %w", err)
		}
		due = parsed
	}

	category := values[fieldCategory]
	if category == noCategory {
		category = ""
	}

	d := task.Draft{
		Title:       strings.TrimSpace(values[fieldTitle]),
		Description: strings.TrimSpace(values[fieldDescription]),
		DueDate:     due,
		Priority:    task.Priority(values[fieldPriority]),
		Tags:        task.ParseTags(values[fieldTags]),
		Category:    category,
	}
	if f.Mode == TaskFormSubtask {
		d.ParentID = f.TargetID
	}
	return d, nil
}
