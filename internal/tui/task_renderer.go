package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

// Expansion records which tasks are collapsed. Tasks are expanded unless
// collapsed explicitly. The zero value is ready to use.
type Expansion struct {
	collapsed map[string]bool
}

// IsExpanded reports whether the children of id are shown.
func (e *Expansion) IsExpanded(id string) bool {
	return !e.collapsed[id]
}

// Toggle flips the expansion of id.
func (e *Expansion) Toggle(id string) {
	if e.collapsed == nil {
		e.collapsed = make(map[string]bool)
	}
	if e.collapsed[id] {
		delete(e.collapsed, id)
		return
	}
	e.collapsed[id] = true
}

// Forget drops state for ids that no longer exist.
func (e *Expansion) Forget(ids ...string) {
	for _, id := range ids {
		delete(e.collapsed, id)
	}
}

// RenderOptions controls how task rows are drawn.
type RenderOptions struct {
	Now        time.Time
	DateFormat string
	// Width truncates each line when positive.
	Width int
	// CategoryColors maps category names to hex colors.
	CategoryColors map[string]string
}

// Row is one rendered line of the task list.
type Row struct {
	Task     task.Task
	Depth    int
	Expanded bool
	Line     string
}

// RenderRows flattens the visible roots and their expanded descendants into
// display rows in depth-first order. Subtasks of a visible root are always
// included; the filter only applies to roots.
func RenderRows(snap *task.Snapshot, visibleRoots []task.Task, exp *Expansion, opts RenderOptions) []Row {
	rows := make([]Row, 0, len(visibleRoots))
	snap.Walk(visibleRoots, func(t task.Task, depth int) bool {
		expanded := exp.IsExpanded(t.ID)
		rows = append(rows, Row{
			Task:     t,
			Depth:    depth,
			Expanded: expanded,
			Line:     renderTaskLine(t, depth, expanded, opts),
		})
		return expanded
	})
	return rows
}

func renderTaskLine(t task.Task, depth int, expanded bool, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(strings.Repeat(styles.IconIndent, depth))

	chevron := styles.IconLeaf
	if t.HasChildren() {
		chevron = styles.IconCollapsed
		if expanded {
			chevron = styles.IconExpanded
		}
	}
	b.WriteString(styles.ChevronStyle.Render(chevron))
	b.WriteByte(' ')

	switch t.Status {
	case task.StatusCompleted:
		b.WriteString(styles.TaskDoneStyle.Render(styles.IconChecked))
		b.WriteByte(' ')
		b.WriteString(styles.TaskDoneStyle.Render(t.Title))
	case task.StatusInProgress:
		b.WriteString(styles.TaskProgressStyle.Render(styles.IconInProgress))
		b.WriteByte(' ')
		b.WriteString(styles.TaskTitleStyle.Render(t.Title))
	default:
		b.WriteString(styles.TaskTitleStyle.Render(styles.IconUnchecked))
		b.WriteByte(' ')
		b.WriteString(styles.TaskTitleStyle.Render(t.Title))
	}

	if t.HasChildren() && !expanded {
		b.WriteString(styles.TextMutedStyle.Render(" (+" + strconv.Itoa(len(t.Children)) + ")"))
	}

	if t.DueDate != nil {
		due := styles.IconCalendar + " " + t.DueDate.Format(opts.DateFormat)
		style := styles.DueStyle
		if t.Overdue(opts.Now) {
			style = styles.DueOverdueStyle
		}
		b.WriteByte(' ')
		b.WriteString(style.Render(due))
	}

	b.WriteByte(' ')
	b.WriteString(styles.PriorityStyle(t.Priority).Render(string(t.Priority)))

	for _, tag := range t.Tags {
		b.WriteByte(' ')
		b.WriteString(styles.TagStyle.Render("#" + tag))
	}

	if t.Category != "" {
		b.WriteByte(' ')
		b.WriteString(styles.CategoryStyle(opts.CategoryColors[t.Category]).Render("@" + t.Category))
	}

	line := b.String()
	if opts.Width > 0 && ansi.StringWidth(line) > opts.Width {
		line = ansi.Truncate(line, opts.Width, "…")
	}
	return line
}
