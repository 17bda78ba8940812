package config

// KeyMappings defines all configurable key bindings.
// Moving cards is done with the mouse; keys only drive the rest of the UI.
type KeyMappings struct {
	CancelDrag string `yaml:"cancel_drag"`
	ShowHelp   string `yaml:"show_help"`
	Quit       string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		CancelDrag: "esc",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
