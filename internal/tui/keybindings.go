package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/taskboard/internal/tui/components"
)

// ActionType identifies what a key press asks the model to do.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeUp
	ActionTypeDown
	ActionTypeToggle
	ActionTypeAdd
	ActionTypeAddSubtask
	ActionTypeEdit
	ActionTypeDelete
	ActionTypeExpand
	ActionTypeMoveUp
	ActionTypeMoveDown
	ActionTypeDetail
	ActionTypeFilter
	ActionTypeShowCompleted
	ActionTypePriorityLow
	ActionTypePriorityMedium
	ActionTypePriorityHigh
	ActionTypeClearFilter
	ActionTypeNotifications
	ActionTypeDismissToast
	ActionTypeNextView
	ActionTypeHelp
	ActionTypeQuit
)

// KeyMap holds every binding of the main screen.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Add            key.Binding
	AddSubtask     key.Binding
	Edit           key.Binding
	Delete         key.Binding
	Expand         key.Binding
	MoveUp         key.Binding
	MoveDown       key.Binding
	Detail         key.Binding
	Filter         key.Binding
	ShowCompleted  key.Binding
	PriorityLow    key.Binding
	PriorityMedium key.Binding
	PriorityHigh   key.Binding
	ClearFilter    key.Binding
	Notifications  key.Binding
	DismissToast   key.Binding
	NextView       key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		AddSubtask:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add subtask")),
		Edit:           key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Expand:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/collapse")),
		MoveUp:         key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:       key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Detail:         key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "details")),
		Filter:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ShowCompleted:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show/hide completed")),
		PriorityLow:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "low priority")),
		PriorityMedium: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium priority")),
		PriorityHigh:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "high priority")),
		ClearFilter:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset filter")),
		Notifications:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		DismissToast:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),
		NextView:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Resolve maps a key press to an action. Task bindings only apply in the
// list view, and those that act on a task need one under the cursor.
func (k KeyMap) Resolve(msg tea.KeyMsg, view ViewType, hasTask bool) ActionType {
	global := []struct {
		binding key.Binding
		action  ActionType
	}{
		{k.Quit, ActionTypeQuit},
		{k.Help, ActionTypeHelp},
		{k.NextView, ActionTypeNextView},
		{k.Notifications, ActionTypeNotifications},
		{k.DismissToast, ActionTypeDismissToast},
	}
	for _, g := range global {
		if key.Matches(msg, g.binding) {
			return g.action
		}
	}

	if view != ViewList {
		return ActionTypeNone
	}

	list := []struct {
		binding  key.Binding
		action   ActionType
		needTask bool
	}{
		{k.Up, ActionTypeUp, false},
		{k.Down, ActionTypeDown, false},
		{k.Add, ActionTypeAdd, false},
		{k.Filter, ActionTypeFilter, false},
		{k.ShowCompleted, ActionTypeShowCompleted, false},
		{k.PriorityLow, ActionTypePriorityLow, false},
		{k.PriorityMedium, ActionTypePriorityMedium, false},
		{k.PriorityHigh, ActionTypePriorityHigh, false},
		{k.ClearFilter, ActionTypeClearFilter, false},
		{k.Toggle, ActionTypeToggle, true},
		{k.AddSubtask, ActionTypeAddSubtask, true},
		{k.Edit, ActionTypeEdit, true},
		{k.Delete, ActionTypeDelete, true},
		{k.Expand, ActionTypeExpand, true},
		{k.MoveUp, ActionTypeMoveUp, true},
		{k.MoveDown, ActionTypeMoveDown, true},
		{k.Detail, ActionTypeDetail, true},
	}
	for _, l := range list {
		if !key.Matches(msg, l.binding) {
			continue
		}
		if l.needTask && !hasTask {
			return ActionTypeNone
		}
		return l.action
	}

	return ActionTypeNone
}

// ShortHelp is the one-line hint shown under the list.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.Filter, k.NextView, k.Help, k.Quit}
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.Expand, k.NextView}},
		{Title: "Tasks", Bindings: []key.Binding{k.Add, k.AddSubtask, k.Edit, k.Toggle, k.Delete, k.MoveUp, k.MoveDown, k.Detail}},
		{Title: "Filters", Bindings: []key.Binding{k.Filter, k.ShowCompleted, k.PriorityLow, k.PriorityMedium, k.PriorityHigh, k.ClearFilter}},
		{Title: "General", Bindings: []key.Binding{k.Notifications, k.DismissToast, k.Help, k.Quit}},
	}
}
