package components

import (
	"github.com/thenoetrevino/quadro/internal/models"
)

// RenderTask renders a single task as a card
//
//	╭──────────────────────╮
//	│ {Task Content}       │
//	╰──────────────────────╯
//
// The card is exactly width cells wide and TaskCardHeight rows tall. Long
// content is cut to one line.
func RenderTask(task models.Task, width int, dragged bool) string {
	style, textStyle := TaskStyle, TaskTextStyle
	if dragged {
		style, textStyle = DraggedTaskStyle, DraggedTextStyle
	}

	text := fit(task.Content, width-4)
	return style.Render(textStyle.Render(" " + text + " "))
}
