// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
)

// HelpDialogSection groups related key bindings under a title.
type HelpDialogSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	var lines []string
	separator := styles.DividerStyle.Render(strings.Repeat("─", 25))

	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.FormTitleStyle.Render(section.Title), separator)
		}

		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			lines = append(lines, formatKeyDesc(b.Help().Key, b.Help().Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.ModalHelpStyle.Render("esc/? close"),
	)

	return styles.ModalStyle.Render(content)
}

// Overlay draws the help dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return OverlayCenter(background, h.View(), width, height)
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(k, desc string) string {
	const keyWidth = 12

	padded := k + Pad(keyWidth-lipgloss.Width(k))
	return styles.CommandHeaderStyle.Render(padded) + styles.TaskTitleStyle.Render(desc)
}
