// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with the terminal width and height as dimensions.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenterOffset(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenterOffset returns the top-left cell that centers a box of the given
// size on screen, never negative
func CenterOffset(width, height, screenWidth, screenHeight int) (x, y int) {
	x = max((screenWidth-width)/2, 0)
	y = max((screenHeight-height)/2, 0)
	return x, y
}

// Compose draws an overlay above a base view.
// A nil overlay returns the base view unchanged.
func Compose(base string, overlay *lipgloss.Layer) string {
	if overlay == nil {
		return base
	}
	canvas := lipgloss.NewCanvas(lipgloss.NewLayer(base), overlay)
	return canvas.Render()
}
