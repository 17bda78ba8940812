package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		Background: "#1C1C1C",

		// UI elements
		ColumnBorder:   "#5F87D7",
		HoverBorder:    "#5FD75F",
		TaskBorder:     "#585858",
		TaskBackground: "#262626",
		DragBorder:     "#D75FD7",
		DropMarker:     "#5FD75F",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status bar
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
		WarningFg:     "#FFD700",
	}
}
