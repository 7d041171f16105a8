package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/ytget/ytpick/internal/config"
)

func TestCompactTheme_PinnedVariant(t *testing.T) {
	light := NewCompactTheme(config.ThemeLight)
	dark := NewCompactTheme(config.ThemeDark)

	// the variant passed by Fyne is ignored
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != LightBackground {
		t.Errorf("light background = %v, want %v", got, LightBackground)
	}
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != DarkBackground {
		t.Errorf("dark background = %v, want %v", got, DarkBackground)
	}
	if got := dark.Color(theme.ColorNameForeground, theme.VariantLight); got != DarkText {
		t.Errorf("dark foreground = %v, want %v", got, DarkText)
	}
}

func TestCompactTheme_Accent(t *testing.T) {
	for _, variant := range []config.ThemeVariant{config.ThemeLight, config.ThemeDark} {
		th := NewCompactTheme(variant)
		if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != AccentPurple {
			t.Errorf("%s primary = %v, want purple accent", variant, got)
		}
	}
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme(config.ThemeLight)
	if got := th.Size(theme.SizeNameText); got != 13 {
		t.Errorf("text size = %v, want 13", got)
	}
	if got := th.Size(theme.SizeNameScrollBar); got != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Errorf("unlisted sizes should come from the default theme, got %v", got)
	}
}
