package state

import "testing"

// TestNewUIState_Defaults ensures a fresh state waits for the terminal size.
// Edge case: View is called before the first WindowSizeMsg.
func TestNewUIState_Defaults(t *testing.T) {
	s := NewUIState()

	if s.Mode() != NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", s.Mode())
	}
	if s.Ready() {
		t.Error("Ready() should be false before the size is known")
	}
	msg, warning := s.Status()
	if msg != DefaultStatus || warning {
		t.Errorf("Status() = %q, %v, want %q, false", msg, warning, DefaultStatus)
	}
}

// TestUIState_Ready requires both dimensions.
func TestUIState_Ready(t *testing.T) {
	s := NewUIState()

	s.SetWidth(80)
	if s.Ready() {
		t.Error("Ready() with height 0 should be false")
	}

	s.SetHeight(24)
	if !s.Ready() {
		t.Error("Ready() with 80x24 should be true")
	}
}

// TestUIState_StatusLevels ensures a warning is cleared by the next info message.
func TestUIState_StatusLevels(t *testing.T) {
	s := NewUIState()

	s.SetWarning("drop cancelled")
	if msg, warning := s.Status(); msg != "drop cancelled" || !warning {
		t.Errorf("Status() = %q, %v, want drop cancelled, true", msg, warning)
	}

	s.SetStatus("moved")
	if _, warning := s.Status(); warning {
		t.Error("SetStatus should clear the warning flag")
	}
}
