package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the board title and help border)
	Accent string `yaml:"accent"`

	Background string `yaml:"background"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	HoverBorder    string `yaml:"hover_border"` // Column under a dragged card
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	DragBorder     string `yaml:"drag_border"` // Card being dragged
	DropMarker     string `yaml:"drop_marker"` // Insertion line

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
	WarningFg     string `yaml:"warning_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// Presets lists the names GetPreset understands
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.MergeFrom(*preset, false)
}

// MergeFrom copies colors from other.
// With override set, every non-empty color in other wins; otherwise only
// empty colors in c are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	pick := func(dst *string, src string) {
		if src == "" {
			return
		}
		if override || *dst == "" {
			*dst = src
		}
	}

	pick(&c.Accent, other.Accent)
	pick(&c.Background, other.Background)
	pick(&c.ColumnBorder, other.ColumnBorder)
	pick(&c.HoverBorder, other.HoverBorder)
	pick(&c.TaskBorder, other.TaskBorder)
	pick(&c.TaskBackground, other.TaskBackground)
	pick(&c.DragBorder, other.DragBorder)
	pick(&c.DropMarker, other.DropMarker)
	pick(&c.Title, other.Title)
	pick(&c.Subtle, other.Subtle)
	pick(&c.Normal, other.Normal)
	pick(&c.StatusBarBg, other.StatusBarBg)
	pick(&c.StatusBarText, other.StatusBarText)
	pick(&c.WarningFg, other.WarningFg)
}
