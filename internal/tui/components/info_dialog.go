package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskboard/internal/core/styles"
)

const (
	infoModalMaxHeight = 30
	infoModalMargin    = 4
	infoModalChrome    = 6 // title + divider + help + spacing
	infoModalMinWidth  = 50
)

// InfoStatus represents the status of an info item.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row in an info section.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups related info items under a section title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialog displays labeled fields followed by an optional markdown body
// rendered with glamour, inside a scrollable viewport.
type InfoDialog struct {
	title    string
	sections []InfoSection
	markdown string
	helpText string
	width    int
	height   int
	viewport viewport.Model
}

// NewInfoDialog creates a new info dialog sized for a width x height screen.
func NewInfoDialog(title string, sections []InfoSection, markdown, helpText string, width, height int) *InfoDialog {
	modalWidth, modalHeight := infoModalSize(width, height)
	vp := viewport.New(modalWidth-4, max(modalHeight-infoModalChrome, 1))

	d := &InfoDialog{
		title:    title,
		sections: sections,
		markdown: markdown,
		helpText: helpText,
		width:    width,
		height:   height,
		viewport: vp,
	}
	d.viewport.SetContent(d.renderContent(modalWidth))
	return d
}

func infoModalSize(width, height int) (int, int) {
	w := min(max(int(float64(width)*0.65), infoModalMinWidth), width-infoModalMargin)
	h := min(height-infoModalMargin, infoModalMaxHeight)
	return max(w, 10), max(h, infoModalChrome+1)
}

func (d *InfoDialog) renderContent(modalWidth int) string {
	separator := styles.DividerStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	var lines []string

	for i, section := range d.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.FormTitleStyle.Render(section.Title), separator)
		}
		for _, item := range section.Items {
			lines = append(lines, formatInfoItem(item))
		}
	}

	if strings.TrimSpace(d.markdown) != "" {
		lines = append(lines, "", renderMarkdown(d.markdown, modalWidth-6))
	}

	return strings.Join(lines, "\n")
}

// renderMarkdown renders md with the active theme, falling back to the raw
// text when glamour fails.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		log.Debug().Err(err).Msg("create markdown renderer")
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("render markdown")
		return md
	}
	return strings.Trim(out, "\n")
}

func formatInfoItem(item InfoItem) string {
	label := styles.DetailLabelStyle.Render(item.Label)
	value := styles.TaskTitleStyle.Render(item.Value)

	if icon := statusIcon(item.Status); icon != "" {
		return fmt.Sprintf("%s %s  %s", icon, label, value)
	}
	return fmt.Sprintf("%s  %s", label, value)
}

func statusIcon(s InfoStatus) string {
	switch s {
	case InfoStatusPass:
		return lipgloss.NewStyle().Foreground(styles.ColorSuccess).Render("✔")
	case InfoStatusWarn:
		return lipgloss.NewStyle().Foreground(styles.ColorWarning).Render("●")
	case InfoStatusFail:
		return lipgloss.NewStyle().Foreground(styles.ColorError).Render("✘")
	default:
		return ""
	}
}

// ScrollUp scrolls the viewport up.
func (d *InfoDialog) ScrollUp() {
	d.viewport.LineUp(1)
}

// ScrollDown scrolls the viewport down.
func (d *InfoDialog) ScrollDown() {
	d.viewport.LineDown(1)
}

// View renders the dialog box.
func (d *InfoDialog) View() string {
	modalWidth, modalHeight := infoModalSize(d.width, d.height)

	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.FormHelpStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.DividerStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title)+scrollInfo,
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	return styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(content)
}

// Overlay draws the dialog centered over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	return OverlayCenter(background, d.View(), width, height)
}
