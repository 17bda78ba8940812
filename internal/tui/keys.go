package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/quadro/internal/config"
)

// KeyMap holds the key bindings of the board screen.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	CancelDrag key.Binding
	ShowHelp   key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// NewKeyMap builds the bindings from the configured key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		CancelDrag: key.NewBinding(
			key.WithKeys(km.CancelDrag),
			key.WithHelp(km.CancelDrag, "cancel drag"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit),
			key.WithHelp(km.Quit, "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CancelDrag, k.ShowHelp, k.Quit}
}

// FullHelp returns the bindings grouped for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
