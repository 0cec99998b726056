package components

import (
	lipgloss "charm.land/lipgloss/v2"
)

// Overlay composites fg over bg with its top-left corner at column x, row y.
// Background cells outside fg stay visible.
func Overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}

	bgLayer := lipgloss.NewLayer(bg)
	fgLayer := lipgloss.NewLayer(fg).X(max(x, 0)).Y(max(y, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, fgLayer).Render()
}

// OverlayCenter composites modal over the middle of a width x height
// background.
func OverlayCenter(bg, modal string, width, height int) string {
	x := (width - lipgloss.Width(modal)) / 2
	y := (height - lipgloss.Height(modal)) / 2
	return Overlay(bg, modal, x, y)
}
