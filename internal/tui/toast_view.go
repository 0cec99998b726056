package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/notify"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/tui/components"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the active toasts of a controller.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack, oldest at the top and newest at the bottom.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func levelIcon(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func renderToast(t toast) string {
	icon, style := levelIcon(t.notification.Level)
	return style.Width(toastWidth).Render(icon + " " + t.notification.Message)
}

// Overlay draws the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	content := v.View()
	if content == "" {
		return background
	}

	x := max(width-lipgloss.Width(content)-1, 0)
	y := max(height-lipgloss.Height(content), 0)
	return components.Overlay(background, content, x, y)
}
