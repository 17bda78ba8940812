package colors

import "testing"

func TestGetPreset(t *testing.T) {
	for _, name := range Presets() {
		if got := GetPreset(name).Preset; got != name {
			t.Errorf("GetPreset(%q).Preset = %q", name, got)
		}
	}

	if got := GetPreset("unknown").Preset; got != "default" {
		t.Errorf("GetPreset(unknown).Preset = %q, want default", got)
	}
}

func TestPresetsAreComplete(t *testing.T) {
	for _, name := range Presets() {
		scheme := GetPreset(name)
		empty := *scheme
		empty.MergeFrom(ColorScheme{}, true)

		// Applying defaults on top of a full preset must change nothing
		filled := *scheme
		filled.ApplyDefaults()
		if filled != *scheme {
			t.Errorf("preset %q is missing colors: %+v", name, filled)
		}
		if empty != *scheme {
			t.Errorf("merging an empty scheme changed preset %q", name)
		}
	}
}

func TestMergeFrom(t *testing.T) {
	base := ColorScheme{Accent: "#111111", Title: "#222222"}

	fill := base
	fill.MergeFrom(ColorScheme{Accent: "#AAAAAA", Normal: "#BBBBBB"}, false)
	if fill.Accent != "#111111" {
		t.Errorf("fill-only merge overwrote Accent: %s", fill.Accent)
	}
	if fill.Normal != "#BBBBBB" {
		t.Errorf("fill-only merge did not set Normal: %s", fill.Normal)
	}

	override := base
	override.MergeFrom(ColorScheme{Accent: "#AAAAAA"}, true)
	if override.Accent != "#AAAAAA" {
		t.Errorf("override merge kept Accent: %s", override.Accent)
	}
	if override.Title != "#222222" {
		t.Errorf("override merge cleared Title: %s", override.Title)
	}
}
