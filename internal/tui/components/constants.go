package components

const (
	TaskCardHeight = 3 // TaskCardHeight is the fixed height of the task card, borders included
	cardGapLines   = 1 // blank row above every card, and one after the last card
	cardSlotHeight = cardGapLines + TaskCardHeight

	columnBorderOverhead = 2 // top border + bottom border
	headerLines          = 1 // column name and count
	columnGap            = 2 // blank cells between two columns

	// BoardTop is the first row of the columns: title line plus a blank line
	BoardTop = 2

	// FooterLines is the status bar plus the key help line
	FooterLines = 2

	// minColumnHeight fits borders, the header and the trailing gap
	minColumnHeight = columnBorderOverhead + headerLines + cardGapLines

	ellipsis = "…"
)
