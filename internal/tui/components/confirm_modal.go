package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
)

// ConfirmModal is a yes/no confirmation dialog with Confirm and Cancel
// buttons. Confirm is selected initially.
type ConfirmModal struct {
	title           string
	message         string
	confirmSelected bool
	confirmed       bool
	cancelled       bool
}

// NewConfirmModal creates a new confirmation modal.
func NewConfirmModal(title, message string) ConfirmModal {
	return ConfirmModal{
		title:           title,
		message:         message,
		confirmSelected: true,
	}
}

// Update handles input for the confirmation modal.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "h", "l", "tab":
		m.confirmSelected = !m.confirmSelected
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "esc":
		m.cancelled = true
	case "enter":
		if m.confirmSelected {
			m.confirmed = true
		} else {
			m.cancelled = true
		}
	}

	return m, nil
}

// View renders the confirmation modal box.
func (m ConfirmModal) View() string {
	confirmBtn := styles.ModalButtonStyle.Render("Confirm")
	cancelBtn := styles.ModalButtonSelectedStyle.Render("Cancel")
	if m.confirmSelected {
		confirmBtn = styles.ModalButtonSelectedStyle.Render("Confirm")
		cancelBtn = styles.ModalButtonStyle.Render("Cancel")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		m.message,
		lipgloss.NewStyle().MarginTop(1).Render(buttons),
		styles.ModalHelpStyle.Render("←/→ select  enter confirm  y/n  esc cancel"),
	)

	return styles.ModalStyle.Render(content)
}

// Overlay draws the modal centered over background.
func (m ConfirmModal) Overlay(background string, width, height int) string {
	return OverlayCenter(background, m.View(), width, height)
}

// Confirmed returns true if user confirmed.
func (m ConfirmModal) Confirmed() bool { return m.confirmed }

// Cancelled returns true if user cancelled.
func (m ConfirmModal) Cancelled() bool { return m.cancelled }

// ConfirmSelected returns true if the confirm button is selected.
func (m ConfirmModal) ConfirmSelected() bool { return m.confirmSelected }
