// Package tui implements the interactive task board.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/core/deadline"
	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/notify"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/tui/components"
	tuinotify "github.com/colonyops/taskboard/internal/tui/notify"
)

// UIState represents what currently has input focus.
type UIState int

const (
	stateNormal UIState = iota
	stateTaskForm
	stateFilterForm
	stateConfirmDelete
	stateShowingHelp
	stateShowingDetail
	stateShowingNotifications
)

// Options configures the TUI.
type Options struct {
	Config *config.Config
	Tree   *task.Tree
	// Store keeps notification history. Defaults to an in-memory store.
	Store notify.Store
	// Now defaults to time.Now.
	Now func() time.Time
	// Build is shown in the help dialog.
	Build BuildInfo
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg    *config.Config
	tree   *task.Tree
	keys   KeyMap
	state  UIState
	view   ViewType
	width  int
	height int
	now    func() time.Time
	log    zerolog.Logger
	build  BuildInfo

	quitting bool

	// Task list
	rows       []Row
	cursor     int
	selectedID string
	expansion  *Expansion
	filter     task.Filter
	categories map[string]string

	// Deadline checks
	overdue     []notify.Notification
	deadlineGen uint64
	interval    time.Duration

	// Modals
	taskForm          *TaskForm
	filterForm        *FilterForm
	confirm           components.ConfirmModal
	pendingDelete     string
	helpDialog        *components.HelpDialog
	detailDialog      *components.InfoDialog
	notificationModal *NotificationModal

	// Notifications
	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView
}

// New creates the TUI model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	tree := opts.Tree
	if tree == nil {
		tree = task.NewTree()
	}
	store := opts.Store
	if store == nil {
		store = notify.NewMemoryStore(notify.DefaultHistorySize)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	categories := make(map[string]string, len(cfg.Categories))
	for _, c := range cfg.Categories {
		categories[c.Name] = c.Color
	}

	toastController := NewToastController()
	bus := tuinotify.NewBus(store)
	bus.Subscribe(toastController.Push)

	interval := cfg.TUI.DeadlineInterval
	if interval <= 0 {
		interval = deadline.DefaultInterval
	}

	m := Model{
		cfg:             cfg,
		tree:            tree,
		keys:            DefaultKeyMap(),
		now:             now,
		build:           opts.Build,
		log:             logging.Component("tui"),
		expansion:       &Expansion{},
		filter:          cfg.Filter(),
		categories:      categories,
		interval:        interval,
		deadlineGen:     1,
		notifyBus:       bus,
		toastController: toastController,
		toastView:       NewToastView(toastController),
	}
	m.refreshRows()
	return m
}

// Init runs the first deadline check right away; later checks follow the
// configured interval.
func (m Model) Init() tea.Cmd {
	gen := m.deadlineGen
	return func() tea.Msg {
		return deadlineTickMsg{gen: gen, at: m.now()}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshRows()
		return m, nil

	case deadlineTickMsg:
		if msg.gen != m.deadlineGen {
			return m, nil
		}
		cmd := m.checkDeadlines(msg.at)
		return m, tea.Batch(cmd, scheduleDeadlineTick(m.deadlineGen, m.interval))

	case toastTickMsg:
		m.toastController.Tick(toastTickInterval)
		if m.toastController.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toastController.SetTicking(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// ctx returns a context carrying the active view and task for log events.
func (m Model) ctx(taskID string) context.Context {
	ctx := logging.WithView(context.Background(), m.view.String())
	if taskID != "" {
		ctx = logging.WithTaskID(ctx, taskID)
	}
	return ctx
}

// isModalActive reports whether a dialog has input focus.
func (m Model) isModalActive() bool {
	return m.state != stateNormal
}

// selected returns the task under the cursor.
func (m Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return task.Task{}, false
	}
	return m.rows[m.cursor].Task, true
}

// refreshRows rebuilds the visible rows from the current snapshot and keeps
// the cursor on the selected task when it is still visible.
func (m *Model) refreshRows() {
	snap := m.tree.Snapshot()
	visible := task.VisibleTasks(snap.Roots(), m.filter)
	m.rows = RenderRows(snap, visible, m.expansion, RenderOptions{
		Now:            m.now(),
		DateFormat:     m.cfg.TUI.DateFormat,
		Width:          max(m.width-4, 0),
		CategoryColors: m.categories,
	})

	if m.selectedID != "" {
		for i, r := range m.rows {
			if r.Task.ID == m.selectedID {
				m.cursor = i
				return
			}
		}
	}

	m.cursor = min(max(m.cursor, 0), max(len(m.rows)-1, 0))
	if t, ok := m.selected(); ok {
		m.selectedID = t.ID
	} else {
		m.selectedID = ""
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.selectedID = m.rows[m.cursor].Task.ID
}

// checkDeadlines replaces the overdue set and raises a toast for each task
// that became overdue since the previous check.
func (m *Model) checkDeadlines(now time.Time) tea.Cmd {
	next := deadline.Check(m.tree.Snapshot(), now)
	added := deadline.Added(m.overdue, next)
	m.overdue = next

	if len(added) > 0 {
		m.log.Debug().Ctx(m.ctx("")).Int("overdue", len(next)).Int("new", len(added)).Msg("deadline check")
	}
	m.notifyBus.PublishAll(added)
	return m.ensureToastTick()
}

// afterMutation refreshes the list, rechecks deadlines and restarts the
// deadline loop so the next periodic check is a full interval away.
func (m *Model) afterMutation() tea.Cmd {
	m.refreshRows()
	cmd := m.checkDeadlines(m.now())
	m.deadlineGen++
	return tea.Batch(cmd, scheduleDeadlineTick(m.deadlineGen, m.interval))
}

// ensureToastTick starts the toast countdown when toasts are showing and no
// tick is scheduled.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// reportError logs err and shows it as an error toast.
func (m *Model) reportError(taskID, op string, err error) tea.Cmd {
	m.log.Error().Ctx(m.ctx(taskID)).Err(err).Str("op", op).Msg("task operation failed")
	m.notifyBus.Errorf("%s failed: %v", op, err)
	return m.ensureToastTick()
}
