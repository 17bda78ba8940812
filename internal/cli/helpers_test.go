package cli

import (
	"testing"

	"github.com/thenoetrevino/quadro/internal/models"
)

func TestParseLocation_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  models.Location
	}{
		{"requested:0", models.Location{ColumnID: "requested", Index: 0}},
		{"toDo:3", models.Location{ColumnID: "toDo", Index: 3}},
		{"requested:12", models.Location{ColumnID: "requested", Index: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocation(tt.input)
			if err != nil {
				t.Fatalf("ParseLocation(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocation(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLocation_Invalid(t *testing.T) {
	tests := []string{
		"",          // Empty
		"requested", // No index
		":0",        // No column
		"toDo:",     // Empty index
		"toDo:one",  // Non-numeric index
		"toDo:-1",   // Negative index
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseLocation(input); err == nil {
				t.Errorf("ParseLocation(%q) should have failed", input)
			}
		})
	}
}

func TestParseLocation_RoundTripsString(t *testing.T) {
	loc := models.Location{ColumnID: "toDo", Index: 2}
	got, err := ParseLocation(loc.String())
	if err != nil {
		t.Fatalf("ParseLocation(%q) returned error: %v", loc.String(), err)
	}
	if got != loc {
		t.Errorf("ParseLocation(%q) = %+v, want %+v", loc.String(), got, loc)
	}
}
