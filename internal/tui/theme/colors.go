package theme

import "github.com/thenoetrevino/quadro/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Background    string
	Title         string
	Subtle        string
	Normal        string
	ColumnBorder  string
	HoverBorder   string
	TaskBorder    string
	TaskBg        string
	DragBorder    string
	DropMarker    string
	StatusBarBg   string
	StatusBarText string
	WarningFg     string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	ColumnBorder = scheme.ColumnBorder
	HoverBorder = scheme.HoverBorder
	TaskBorder = scheme.TaskBorder
	TaskBg = scheme.TaskBackground
	DragBorder = scheme.DragBorder
	DropMarker = scheme.DropMarker
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
	WarningFg = scheme.WarningFg
}
