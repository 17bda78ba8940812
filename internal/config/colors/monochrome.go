package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		Background: "#121212",

		// UI elements
		ColumnBorder:   "#FFFFFF",
		HoverBorder:    "#FFFFFF",
		TaskBorder:     "#585858",
		TaskBackground: "#1C1C1C",
		DragBorder:     "#FFFFFF",
		DropMarker:     "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
		WarningFg:     "#FFFFFF",
	}
}
