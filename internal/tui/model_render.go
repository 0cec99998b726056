package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/tui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	headerHeight  = 2
	footerHeight  = 1
)

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	mainView := m.renderMain(w, h)

	var content string
	switch {
	case m.state == stateTaskForm && m.taskForm != nil:
		content = components.OverlayCenter(mainView, renderFormModal(m.taskForm.Title(), m.taskForm.View()), w, h)
	case m.state == stateFilterForm && m.filterForm != nil:
		content = components.OverlayCenter(mainView, renderFormModal(m.filterForm.Title(), m.filterForm.View()), w, h)
	case m.state == stateConfirmDelete:
		content = m.confirm.Overlay(mainView, w, h)
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.state == stateShowingDetail && m.detailDialog != nil:
		content = m.detailDialog.Overlay(mainView, w, h)
	case m.state == stateShowingNotifications && m.notificationModal != nil:
		content = m.notificationModal.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	return m.toastView.Overlay(content, w, h)
}

func renderFormModal(title, body string) string {
	return styles.ModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		"",
		body,
	))
}

func (m Model) renderMain(w, h int) string {
	bodyHeight := max(h-headerHeight-footerHeight, 1)

	var body string
	switch m.view {
	case ViewStats:
		body = renderStatsView(m.tree.Snapshot(), m.now(), w)
	case ViewCalendar:
		body = renderCalendarView(m.tree.Snapshot(), m.now())
	default:
		body = m.renderList(bodyHeight)
	}

	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(w),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader(w int) string {
	tabs := make([]string, 0, len(views))
	for _, v := range views {
		style := styles.ViewNormalStyle
		if v == m.view {
			style = styles.ViewSelectedStyle
		}
		tabs = append(tabs, style.Render(v.String()))
	}

	left := styles.HeaderStyle.Render("taskboard") + " " + strings.Join(tabs, "  ")

	right := ""
	if n := len(m.overdue); n > 0 {
		right = styles.BellStyle.Render(fmt.Sprintf("%s %d", styles.IconBell, n))
	}

	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	line := left + components.Pad(gap) + right

	filter := styles.HelpStyle.Render(describeFilter(m.filter))
	return lipgloss.JoinVertical(lipgloss.Left, line, filter)
}

// describeFilter summarizes the active filter for the header.
func describeFilter(f task.Filter) string {
	parts := []string{}
	if !f.ShowCompleted {
		parts = append(parts, "hiding completed")
	}
	if f.Priority != task.AllPriorities() {
		shown := []string{}
		for _, p := range task.Priorities {
			if f.Priority.Allows(p) {
				shown = append(shown, string(p))
			}
		}
		if len(shown) == 0 {
			shown = append(shown, "none")
		}
		parts = append(parts, "priority: "+strings.Join(shown, ","))
	}
	if f.Category != "" {
		parts = append(parts, "category: "+f.Category)
	}
	if f.TagPattern != "" {
		parts = append(parts, "tags: "+f.TagPattern)
	}
	if len(parts) == 0 {
		return "all tasks"
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderList(height int) string {
	if len(m.rows) == 0 {
		if m.tree.Snapshot().Len() == 0 {
			return styles.EmptyStateStyle.Render("No tasks yet. Press a to add one.")
		}
		return styles.EmptyStateStyle.Render("No tasks match the current filter. Press 0 to reset it.")
	}

	offset := max(m.cursor-height+1, 0)
	end := min(offset+height, len(m.rows))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		row := m.rows[i]
		if i == m.cursor {
			lines = append(lines, styles.RowCursorStyle.Render(styles.IconCursor+" "+row.Line))
			continue
		}
		lines = append(lines, "  "+row.Line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.HelpStyle.Render(strings.Join(parts, " • "))
}
