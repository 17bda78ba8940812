package state

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Board visible, mouse drags active
	HelpMode               // Displaying help screen
)

// UIState manages the user interface state.
// This includes terminal dimensions, the current interaction mode, and the
// message shown in the status bar.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// status is the last action, shown on the left of the status bar
	status string

	// warning marks status as something the user should notice
	warning bool
}

// DefaultStatus is shown before anything has happened
const DefaultStatus = "drag a card with the mouse"

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:   NormalMode,
		status: DefaultStatus,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Ready reports whether the terminal size is known
func (s *UIState) Ready() bool {
	return s.width > 0 && s.height > 0
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Status returns the status bar message and whether it is a warning.
func (s *UIState) Status() (message string, warning bool) {
	return s.status, s.warning
}

// SetStatus shows an informational message in the status bar.
func (s *UIState) SetStatus(message string) {
	s.status = message
	s.warning = false
}

// SetWarning shows a warning in the status bar.
func (s *UIState) SetWarning(message string) {
	s.status = message
	s.warning = true
}
