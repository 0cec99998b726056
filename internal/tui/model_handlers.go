package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/tui/components"
)

// Key constants for modal handling.
const (
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateTaskForm:
		return m.handleTaskFormKey(msg)
	case stateFilterForm:
		return m.handleFilterFormKey(msg)
	case stateConfirmDelete:
		return m.handleConfirmKey(msg)
	case stateShowingHelp:
		switch msg.String() {
		case keyEsc, "?", "q":
			m.state = stateNormal
			m.helpDialog = nil
		}
		return m, nil
	case stateShowingDetail:
		return m.handleDetailKey(msg)
	case stateShowingNotifications:
		return m.handleNotificationsKey(msg)
	}

	_, hasTask := m.selected()
	return m.handleAction(m.keys.Resolve(msg, m.view, hasTask))
}

func (m Model) handleAction(action ActionType) (tea.Model, tea.Cmd) {
	current, _ := m.selected()

	switch action {
	case ActionTypeQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionTypeHelp:
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts · taskboard "+m.build.String(), m.keys.HelpSections())
		m.state = stateShowingHelp
	case ActionTypeNextView:
		m.view = m.view.Next()
	case ActionTypeNotifications:
		m.notificationModal = NewNotificationModal(m.notifyBus, m.overdue, m.width, m.height)
		m.state = stateShowingNotifications
	case ActionTypeDismissToast:
		m.toastController.Dismiss()
	case ActionTypeUp:
		m.moveCursor(-1)
	case ActionTypeDown:
		m.moveCursor(1)
	case ActionTypeAdd:
		m.openTaskForm(TaskFormCreate, task.Task{})
	case ActionTypeAddSubtask:
		m.openTaskForm(TaskFormSubtask, current)
	case ActionTypeEdit:
		m.openTaskForm(TaskFormEdit, current)
	case ActionTypeToggle:
		return m.toggleTask(current.ID)
	case ActionTypeDelete:
		m.confirmDelete(current)
	case ActionTypeExpand:
		if current.HasChildren() {
			m.expansion.Toggle(current.ID)
			m.refreshRows()
		}
	case ActionTypeMoveUp:
		return m.moveTask(current.ID, -1)
	case ActionTypeMoveDown:
		return m.moveTask(current.ID, 1)
	case ActionTypeDetail:
		m.openDetail(current)
	case ActionTypeFilter:
		m.filterForm = NewFilterForm(m.filter, m.cfg.CategoryNames())
		m.state = stateFilterForm
	case ActionTypeShowCompleted:
		m.filter.ShowCompleted = !m.filter.ShowCompleted
		m.refreshRows()
	case ActionTypePriorityLow:
		m.togglePriority(task.PriorityLow)
	case ActionTypePriorityMedium:
		m.togglePriority(task.PriorityMedium)
	case ActionTypePriorityHigh:
		m.togglePriority(task.PriorityHigh)
	case ActionTypeClearFilter:
		m.filter = m.cfg.Filter()
		m.refreshRows()
	}

	return m, nil
}

func (m *Model) togglePriority(p task.Priority) {
	m.filter.Priority = m.filter.Priority.Toggle(p)
	m.refreshRows()
}

func (m *Model) openTaskForm(mode TaskFormMode, t task.Task) {
	m.taskForm = NewTaskForm(mode, t, m.cfg.CategoryNames(), m.cfg.TUI.DateFormat)
	m.state = stateTaskForm
}

func (m Model) handleTaskFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.taskForm, cmd = m.taskForm.Update(msg)

	switch {
	case m.taskForm.Cancelled():
		m.taskForm = nil
		m.state = stateNormal
		return m, nil
	case m.taskForm.Submitted():
		f := m.taskForm
		m.taskForm = nil
		m.state = stateNormal
		return m.submitTaskForm(f)
	}

	return m, cmd
}

func (m Model) submitTaskForm(f *TaskForm) (tea.Model, tea.Cmd) {
	d, err := f.Draft()
	if err != nil {
		return m, m.reportError(f.TargetID, "save task", err)
	}

	switch f.Mode {
	case TaskFormEdit:
		updated, err := m.tree.Edit(f.TargetID, task.PatchFromDraft(d))
		if err != nil {
			return m, m.reportError(f.TargetID, "edit task", err)
		}
		m.log.Info().Ctx(m.ctx(updated.ID)).Msg("task edited")
	default:
		created, err := m.tree.Add(d)
		if err != nil {
			return m, m.reportError(d.ParentID, "add task", err)
		}
		if created.ParentID != "" && !m.expansion.IsExpanded(created.ParentID) {
			m.expansion.Toggle(created.ParentID)
		}
		m.selectedID = created.ID
		m.log.Info().Ctx(m.ctx(created.ID)).Int("level", created.Level).Msg("task added")
	}

	return m, m.afterMutation()
}

func (m Model) toggleTask(id string) (tea.Model, tea.Cmd) {
	toggled, err := m.tree.Toggle(id)
	if err != nil {
		return m, m.reportError(id, "toggle task", err)
	}
	m.log.Info().Ctx(m.ctx(id)).Str("status", string(toggled.Status)).Msg("task toggled")
	return m, m.afterMutation()
}

func (m Model) moveTask(id string, delta int) (tea.Model, tea.Cmd) {
	if err := m.tree.Move(id, delta); err != nil {
		return m, m.reportError(id, "move task", err)
	}
	m.selectedID = id
	return m, m.afterMutation()
}

func (m *Model) confirmDelete(t task.Task) {
	message := fmt.Sprintf("Delete %q?", t.Title)
	if n := len(m.tree.Snapshot().Descendants(t.ID)); n > 0 {
		noun := "subtasks"
		if n == 1 {
			noun = "subtask"
		}
		message = fmt.Sprintf("Delete %q and its %d %s?", t.Title, n, noun)
	}

	m.confirm = components.NewConfirmModal("Delete Task", message)
	m.pendingDelete = t.ID
	m.state = stateConfirmDelete
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)

	switch {
	case m.confirm.Cancelled():
		m.pendingDelete = ""
		m.state = stateNormal
		return m, nil
	case m.confirm.Confirmed():
		id := m.pendingDelete
		m.pendingDelete = ""
		m.state = stateNormal

		removed, err := m.tree.Delete(id)
		if err != nil {
			return m, m.reportError(id, "delete task", err)
		}
		m.expansion.Forget(removed...)
		m.selectedID = ""
		m.log.Info().Ctx(m.ctx(id)).Int("removed", len(removed)).Msg("task deleted")
		return m, m.afterMutation()
	}

	return m, nil
}

func (m Model) handleFilterFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filterForm, cmd = m.filterForm.Update(msg)

	switch {
	case m.filterForm.Cancelled():
		m.filterForm = nil
		m.state = stateNormal
		return m, nil
	case m.filterForm.Submitted():
		m.filter = m.filterForm.Filter()
		m.filterForm = nil
		m.state = stateNormal
		m.refreshRows()
		return m, nil
	}

	return m, cmd
}

func (m *Model) openDetail(t task.Task) {
	due := "none"
	if t.DueDate != nil {
		due = t.DueDate.Format(m.cfg.TUI.DateFormat)
	}

	dueStatus := components.InfoStatusNone
	if t.Overdue(m.now()) {
		dueStatus = components.InfoStatusWarn
	}
	statusStatus := components.InfoStatusNone
	if t.Completed() {
		statusStatus = components.InfoStatusPass
	}

	sections := []components.InfoSection{{
		Items: []components.InfoItem{
			{Label: "Status", Value: string(t.Status), Status: statusStatus},
			{Label: "Priority", Value: string(t.Priority)},
			{Label: "Due", Value: due, Status: dueStatus},
			{Label: "Tags", Value: valueOr(task.FormatTags(t.Tags), "none")},
			{Label: "Category", Value: valueOr(t.Category, "none")},
			{Label: "Subtasks", Value: fmt.Sprintf("%d", len(t.Children))},
			{Label: "Created", Value: t.CreatedAt.Format("2006-01-02 15:04")},
		},
	}}

	m.detailDialog = components.NewInfoDialog(t.Title, sections, t.Description, "[j/k] scroll  [esc] close", m.width, m.height)
	m.state = stateShowingDetail
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc, "q", "v":
		m.detailDialog = nil
		m.state = stateNormal
	case "j", "down":
		m.detailDialog.ScrollDown()
	case "k", "up":
		m.detailDialog.ScrollUp()
	}
	return m, nil
}

func (m Model) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc, "q", "n":
		m.notificationModal = nil
		m.state = stateNormal
	case "j", "down":
		m.notificationModal.ScrollDown()
	case "k", "up":
		m.notificationModal.ScrollUp()
	case "D":
		if err := m.notificationModal.Clear(); err != nil {
			return m, m.reportError("", "clear notifications", err)
		}
	}
	return m, nil
}
