package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/notify"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/tui/components"
	tuinotify "github.com/colonyops/taskboard/internal/tui/notify"
)

const (
	notifyModalWidthPct  = 65
	notifyModalMinWidth  = 60
	notifyModalMaxHeight = 30
	notifyModalMargin    = 4
	notifyModalChrome    = 6 // title + divider + help + spacing
)

// NotificationModal lists the current overdue alerts followed by the
// notification history in a scrollable viewport.
type NotificationModal struct {
	bus      *tuinotify.Bus
	overdue  []notify.Notification
	viewport viewport.Model
	width    int
	height   int
}

// NewNotificationModal creates a modal for a width x height screen.
func NewNotificationModal(bus *tuinotify.Bus, overdue []notify.Notification, width, height int) *NotificationModal {
	modalWidth := calcNotificationModalWidth(width)
	modalHeight := min(height-notifyModalMargin, notifyModalMaxHeight)

	m := &NotificationModal{
		bus:      bus,
		overdue:  overdue,
		viewport: viewport.New(max(modalWidth-4, 1), max(modalHeight-notifyModalChrome, 1)),
		width:    width,
		height:   height,
	}
	m.refreshContent()
	return m
}

func (m *NotificationModal) refreshContent() {
	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render(fmt.Sprintf("Overdue (%d)", len(m.overdue))))
	b.WriteByte('\n')
	if len(m.overdue) == 0 {
		b.WriteString(styles.TextMutedStyle.Render("Nothing is overdue"))
	}
	for i, n := range m.overdue {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatNotification(n))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.ModalTitleStyle.Render("History"))
	b.WriteByte('\n')
	b.WriteString(m.renderHistory())

	m.viewport.SetContent(b.String())
}

func (m *NotificationModal) renderHistory() string {
	if m.bus == nil {
		return styles.TextMutedStyle.Render("No notifications")
	}

	history, err := m.bus.History()
	if err != nil {
		log := logging.Component("tui")
		log.Error().Err(err).Msg("failed to load notification history")
		return styles.TextErrorStyle.Render(fmt.Sprintf("failed to load notifications: %v", err))
	}
	if len(history) == 0 {
		return styles.TextMutedStyle.Render("No notifications")
	}

	lines := make([]string, 0, len(history))
	for _, n := range history {
		lines = append(lines, formatNotification(n))
	}
	return strings.Join(lines, "\n")
}

func formatNotification(n notify.Notification) string {
	ts := styles.TextMutedStyle.Render(n.CreatedAt.Format("15:04:05"))

	icon, _ := levelIcon(n.Level)
	msgStyle := styles.TextPrimaryStyle
	switch n.Level {
	case notify.LevelError:
		msgStyle = styles.TextErrorStyle
	case notify.LevelWarning:
		msgStyle = styles.TextWarningStyle
	}

	return fmt.Sprintf("%s %s %s", ts, icon, msgStyle.Render(n.Message))
}

// ScrollUp scrolls the viewport up one line.
func (m *NotificationModal) ScrollUp() {
	m.viewport.LineUp(1)
}

// ScrollDown scrolls the viewport down one line.
func (m *NotificationModal) ScrollDown() {
	m.viewport.LineDown(1)
}

// Clear deletes the history and refreshes the view. Overdue alerts stay;
// they are recomputed from the task tree.
func (m *NotificationModal) Clear() error {
	if m.bus == nil {
		return nil
	}
	if err := m.bus.Clear(); err != nil {
		return err
	}
	m.refreshContent()
	return nil
}

// View renders the modal box.
func (m *NotificationModal) View() string {
	modalWidth := calcNotificationModalWidth(m.width)
	modalHeight := min(m.height-notifyModalMargin, notifyModalMaxHeight)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(styles.IconBell+" Notifications"+scrollInfo),
		styles.DividerStyle.Render(strings.Repeat("─", max(modalWidth-6, 1))),
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [D] clear history  [esc] close"),
	)

	return styles.ModalStyle.
		Width(modalWidth).
		Height(max(modalHeight, 1)).
		Render(content)
}

// Overlay draws the modal centered over background.
func (m *NotificationModal) Overlay(background string, width, height int) string {
	return components.OverlayCenter(background, m.View(), width, height)
}

func calcNotificationModalWidth(termWidth int) int {
	available := max(termWidth-notifyModalMargin, 1)
	target := termWidth * notifyModalWidthPct / 100
	return min(max(target, notifyModalMinWidth), available)
}
