package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fit truncates s to width cells, ending in an ellipsis when cut, and pads
// it with spaces to exactly width cells. s may contain ANSI sequences.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, ellipsis)
	}
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}
