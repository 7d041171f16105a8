package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/ytpick/internal/config"
)

// Palette
var (
	AccentPurple    = color.RGBA{R: 0x8a, G: 0x4f, B: 0xff, A: 0xff}
	LightBackground = color.RGBA{R: 0xf5, G: 0xf0, B: 0xff, A: 0xff}
	DarkBackground  = color.RGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	DarkButton      = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	LightText       = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	DarkText        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// CompactTheme is a compact purple theme pinned to one variant, so the light
// and dark toggle works regardless of the OS setting
type CompactTheme struct {
	variant fyne.ThemeVariant
}

// NewCompactTheme creates a theme for the persisted variant
func NewCompactTheme(variant config.ThemeVariant) fyne.Theme {
	v := theme.VariantLight
	if variant == config.ThemeDark {
		v = theme.VariantDark
	}
	return &CompactTheme{variant: v}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	dark := t.variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return AccentPurple
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if dark {
			return DarkBackground
		}
		return LightBackground
	case theme.ColorNameButton:
		if dark {
			return DarkButton
		}
	case theme.ColorNameForeground:
		if dark {
			return DarkText
		}
		return LightText
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
