package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AuraneTheme is the application theme: default Fyne look with a blue
// primary, red errors and tighter padding.
type AuraneTheme struct{}

// NewAuraneTheme creates the application theme
func NewAuraneTheme() fyne.Theme {
	return &AuraneTheme{}
}

// Color returns theme colors
func (t *AuraneTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 37, G: 99, B: 235, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 239, G: 68, B: 68, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 17, G: 24, B: 39, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 243, G: 244, B: 246, A: 255}
		}
		return color.RGBA{R: 31, G: 41, B: 55, A: 255}
	case theme.ColorNamePlaceHolder:
		if variant == theme.VariantDark {
			return color.RGBA{R: 156, G: 163, B: 175, A: 255}
		}
		return color.RGBA{R: 107, G: 114, B: 128, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AuraneTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AuraneTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AuraneTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameHeadingText:
		return TitleSize
	case theme.SizeNameSubHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
