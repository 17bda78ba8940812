package components

import (
	"github.com/thenoetrevino/quadro/internal/dnd"
	"github.com/thenoetrevino/quadro/internal/models"
)

// ColumnView is what a column needs to be drawn
type ColumnView struct {
	ID    string
	Name  string
	Items []models.Task
}

// DragView describes a drag in progress. The zero value means no drag.
type DragView struct {
	TaskID string           // Card being dragged
	Hover  *models.Location // Drop target under the pointer, nil when off the board
}

// Geometry holds the sizes every board position is derived from.
// Rendering and hit-testing both go through it so they cannot disagree.
type Geometry struct {
	Width       int // Terminal width
	Height      int // Terminal height
	ColumnWidth int // Outer width of one column
}

// ColumnHeight is the outer height of every column
func (g Geometry) ColumnHeight() int {
	return max(g.Height-BoardTop-FooterLines, minColumnHeight)
}

// BoardWidth is the width of n columns side by side
func (g Geometry) BoardWidth(n int) int {
	if n == 0 {
		return 0
	}
	return n*g.ColumnWidth + (n-1)*columnGap
}

// BoardLeft is the column offset that centers n columns on screen
func (g Geometry) BoardLeft(n int) int {
	return max((g.Width-g.BoardWidth(n))/2, 0)
}

// ColumnX is the left edge of column i out of n
func (g Geometry) ColumnX(n, i int) int {
	return g.BoardLeft(n) + i*(g.ColumnWidth+columnGap)
}

// CardWidth is the outer width of a task card
func (g Geometry) CardWidth() int {
	return g.ColumnWidth - 4 // column border and one blank cell on each side
}

// CardCapacity is how many cards fit in a column
func (g Geometry) CardCapacity() int {
	rows := g.ColumnHeight() - columnBorderOverhead - headerLines - cardGapLines
	return max(rows/cardSlotHeight, 0)
}

// cardTop is the first row of card i in a column whose top border is on row top
func cardTop(top, i int) int {
	return top + 1 + headerLines + cardGapLines + i*cardSlotHeight
}

// BoardLayout builds the hit-test map for the board as RenderBoard draws it.
// Only cards that are actually drawn are included.
func BoardLayout(cols []ColumnView, g Geometry) dnd.Layout {
	layout := dnd.Layout{Columns: make([]dnd.ColumnArea, 0, len(cols))}

	visible := g.CardCapacity()
	for i, col := range cols {
		x := g.ColumnX(len(cols), i)
		area := dnd.ColumnArea{
			ColumnID: col.ID,
			Rect:     dnd.Rect{X: x, Y: BoardTop, W: g.ColumnWidth, H: g.ColumnHeight()},
		}

		for idx, task := range col.Items {
			if idx >= visible {
				break
			}
			area.Cards = append(area.Cards, dnd.CardArea{
				TaskID: task.ID,
				Index:  idx,
				Rect: dnd.Rect{
					X: x + 2,
					Y: cardTop(BoardTop, idx),
					W: g.CardWidth(),
					H: TaskCardHeight,
				},
			})
		}

		layout.Columns = append(layout.Columns, area)
	}

	return layout
}
