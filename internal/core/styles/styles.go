// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/task"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for the active palette.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color

	// ColorDone is the foreground for completed tasks, the foreground
	// blended most of the way into the background.
	ColorDone lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text.
	TextMutedStyle   lipgloss.Style
	TextPrimaryStyle lipgloss.Style
	TextWarningStyle lipgloss.Style
	TextErrorStyle   lipgloss.Style
	TextSuccessStyle lipgloss.Style

	// Shell.
	HeaderStyle       lipgloss.Style
	BellStyle         lipgloss.Style
	HelpStyle         lipgloss.Style
	ViewSelectedStyle lipgloss.Style
	ViewNormalStyle   lipgloss.Style

	// Modals.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Forms.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Task rows.
	RowCursorStyle     lipgloss.Style
	TaskTitleStyle     lipgloss.Style
	TaskDoneStyle      lipgloss.Style
	TaskProgressStyle  lipgloss.Style
	ChevronStyle       lipgloss.Style
	DueStyle           lipgloss.Style
	DueOverdueStyle    lipgloss.Style
	TagStyle           lipgloss.Style
	EmptyStateStyle    lipgloss.Style
	DetailLabelStyle   lipgloss.Style
	PriorityLowStyle   lipgloss.Style
	PriorityMedStyle   lipgloss.Style
	PriorityHighStyle  lipgloss.Style
	StatsBarDoneStyle  lipgloss.Style
	StatsBarTodoStyle  lipgloss.Style
	CalendarTodayStyle lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorDone = Blend(p.Foreground, p.Background, 0.55)

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	BellStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	ViewSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	ViewNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	RowCursorStyle = lipgloss.NewStyle().
		Background(ColorSurface)
	TaskTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TaskDoneStyle = lipgloss.NewStyle().
		Foreground(ColorDone).
		Strikethrough(true)
	TaskProgressStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	ChevronStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DueStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DueOverdueStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	TagStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Padding(1, 2)
	DetailLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(10)

	badge := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorBackground)
	PriorityLowStyle = badge.Background(ColorSuccess)
	PriorityMedStyle = badge.Background(ColorWarning)
	PriorityHighStyle = badge.Background(ColorError).Bold(true)

	StatsBarDoneStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatsBarTodoStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	CalendarTodayStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)
	ToastInfoStyle = toast.BorderForeground(ColorPrimary)
	ToastWarningStyle = toast.BorderForeground(ColorWarning)
	ToastErrorStyle = toast.BorderForeground(ColorError)
}

// PriorityStyle returns the badge style for a priority.
func PriorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return PriorityHighStyle
	case task.PriorityMedium:
		return PriorityMedStyle
	default:
		return PriorityLowStyle
	}
}

// CategoryStyle returns a style colored with a category's hex color, or the
// muted color when none is set.
func CategoryStyle(hex string) lipgloss.Style {
	c := ColorMuted
	if hex != "" {
		c = lipgloss.Color(hex)
	}
	return lipgloss.NewStyle().Foreground(c)
}

// FormTheme returns a huh theme using the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorSecondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorSuccess)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(ColorBackground).Background(ColorPrimary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorMuted).Background(ColorSurface)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorSecondary)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorSecondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted).Bold(false)

	return t
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
