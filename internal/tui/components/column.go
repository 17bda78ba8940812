package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/quadro/internal/models"
)

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	                         <- gap, or the drop marker
//	{Task 1}
//	                         <- gap, or the drop marker
//	{Task 2}
//	...
//	▼ n more / No tasks      <- trailing gap
//
// The result is g.ColumnWidth wide and g.ColumnHeight() tall, matching the
// rectangles BoardLayout reports.
func RenderColumn(col ColumnView, g Geometry, drag DragView) string {
	contentWidth := g.CardWidth()
	innerRows := g.ColumnHeight() - columnBorderOverhead

	visible := min(len(col.Items), g.CardCapacity())
	markerSlot := dropMarkerSlot(col, visible, drag)

	lines := make([]string, 0, innerRows)
	lines = append(lines, renderColumnHeader(col.Name, len(col.Items), contentWidth))

	for i := 0; i < visible; i++ {
		if i == markerSlot {
			lines = append(lines, columnLine(renderDropMarker(contentWidth)))
		} else {
			lines = append(lines, columnLine(fit("", contentWidth)))
		}

		task := col.Items[i]
		card := RenderTask(task, contentWidth, task.ID == drag.TaskID)
		for _, cardLine := range strings.Split(card, "\n") {
			lines = append(lines, columnLine(cardLine))
		}
	}

	// Trailing gap: drop marker, overflow count or empty state
	switch {
	case markerSlot == visible:
		lines = append(lines, columnLine(renderDropMarker(contentWidth)))
	case visible < len(col.Items):
		more := fmt.Sprintf("▼ %d more", len(col.Items)-visible)
		lines = append(lines, columnLine(fit(IndicatorStyle.Render(more), contentWidth)))
	case len(col.Items) == 0:
		empty := IndicatorStyle.Italic(true).Render("No tasks")
		lines = append(lines, columnLine(fit(empty, contentWidth)))
	default:
		lines = append(lines, columnLine(fit("", contentWidth)))
	}

	for len(lines) < innerRows {
		lines = append(lines, columnLine(fit("", contentWidth)))
	}
	if len(lines) > innerRows {
		lines = lines[:innerRows]
	}

	style := ColumnStyle
	if drag.Hover != nil && drag.Hover.ColumnID == col.ID {
		style = HoverColumnStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderColumnHeader renders "{name} ({count})" fitted to width
func renderColumnHeader(name string, count int, width int) string {
	header := fmt.Sprintf("%s (%d)", name, count)
	return columnLine(fit(TitleStyle.Render(header), width))
}

// columnLine adds the blank cell on each side of a column row
func columnLine(s string) string {
	return " " + s + " "
}

func renderDropMarker(width int) string {
	return DropMarkerStyle.Render("▸" + strings.Repeat("─", max(width-1, 0)))
}

// dropMarkerSlot returns the gap the insertion line goes in: i for the gap
// above visible card i, visible for the trailing gap, or -1 for none.
//
// The hover index counts cards with the dragged one lifted out, so the
// dragged card is skipped when counting.
func dropMarkerSlot(col ColumnView, visible int, drag DragView) int {
	if drag.Hover == nil || drag.Hover.ColumnID != col.ID {
		return -1
	}

	target := drag.Hover.Index
	seen := 0
	for i := 0; i < visible; i++ {
		if col.Items[i].ID == drag.TaskID {
			continue
		}
		if seen == target {
			return i
		}
		seen++
	}
	return visible
}

// ColumnViews pairs each board column with the items the handler supplies
func ColumnViews(board models.Board, items func(columnID string) []models.Task) []ColumnView {
	cols := board.OrderedColumns()
	views := make([]ColumnView, 0, len(cols))
	for _, col := range cols {
		views = append(views, ColumnView{
			ID:    col.ID,
			Name:  col.Name,
			Items: items(col.ID),
		})
	}
	return views
}
