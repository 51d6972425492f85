package ui

import (
	"strings"
	"testing"
)

func TestSetTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	testCases := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tc := range testCases {
		SetTheme(tc.name)
		if got := GetCurrentTheme().Name; got != tc.want {
			t.Errorf("SetTheme(%q) selected %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInitThemeNoColor(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	InitTheme(true)
	if ColorRed() != "" || ColorReset() != "" || ColorBold() != "" {
		t.Error("Expected empty escape codes with colors disabled")
	}
	if GetCurrentPanelColors() != NoColorPanelColors {
		t.Error("Expected no-color panel colors")
	}
}

func TestInitThemeRespectsEnv(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("Expected NO_COLOR to disable colors, got %q", GetCurrentTheme().Name)
	}
}

func TestColorFunctionsFollowTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success || ColorBlue() != DarkTheme.Primary || ColorUnderline() != DarkTheme.Underline {
		t.Error("Color functions do not match the dark theme")
	}
	if ColorYellow() != DarkTheme.Warning || ColorMagenta() != DarkTheme.Info || ColorCyan() != DarkTheme.Secondary {
		t.Error("Color functions do not match the dark theme")
	}
}

func TestPanel(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)
	SetCurrentTheme(NoColorTheme)

	out := Panel("Validation passed", []string{"degree: 2", "roots: 2"}, true)
	for _, want := range []string{"Validation passed", "degree: 2", "roots: 2", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("Panel output missing %q:\n%s", want, out)
		}
	}
}
