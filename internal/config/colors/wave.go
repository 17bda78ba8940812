package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color (oniViolet)
		Accent: "#957FB8",

		Background: "#1F1F28", // sumiInk3

		// UI element colors
		ColumnBorder:   "#54546D", // sumiInk6
		HoverBorder:    "#98BB6C", // springGreen
		TaskBorder:     "#363646", // sumiInk5
		TaskBackground: "#2A2A37", // sumiInk4
		DragBorder:     "#7AA89F", // waveAqua2
		DropMarker:     "#98BB6C", // springGreen

		// Text colors
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Status bar
		StatusBarBg:   "#223249", // waveBlue1
		StatusBarText: "#DCD7BA",
		WarningFg:     "#FF9E3B", // roninYellow
	}
}
