package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colours shared by both variants
var (
	tealPrimary = color.NRGBA{R: 13, G: 148, B: 136, A: 255}
	tealLight   = color.NRGBA{R: 45, G: 212, B: 191, A: 255}
	coralAccent = color.NRGBA{R: 249, G: 115, B: 22, A: 255}
)

// palette maps colour names to values for one theme variant
type palette map[fyne.ThemeColorName]color.Color

var lightPalette = palette{
	theme.ColorNamePrimary:           tealPrimary,
	theme.ColorNameFocus:             withAlpha(tealPrimary, 90),
	theme.ColorNameHover:             withAlpha(tealPrimary, 28),
	theme.ColorNameSelection:         withAlpha(tealPrimary, 64),
	theme.ColorNamePressed:           withAlpha(tealPrimary, 110),
	theme.ColorNameBackground:        color.NRGBA{R: 248, G: 250, B: 249, A: 255},
	theme.ColorNameInputBackground:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	theme.ColorNameMenuBackground:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	theme.ColorNameOverlayBackground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	theme.ColorNameForeground:        color.NRGBA{R: 30, G: 41, B: 59, A: 255},
	theme.ColorNamePlaceHolder:       color.NRGBA{R: 148, G: 163, B: 184, A: 255},
	theme.ColorNameSeparator:         color.NRGBA{R: 226, G: 232, B: 240, A: 255},
	theme.ColorNameSuccess:           color.NRGBA{R: 22, G: 163, B: 74, A: 255},
	theme.ColorNameWarning:           coralAccent,
	theme.ColorNameError:             color.NRGBA{R: 220, G: 38, B: 38, A: 255},
}

var darkPalette = palette{
	theme.ColorNamePrimary:           tealLight,
	theme.ColorNameFocus:             withAlpha(tealLight, 110),
	theme.ColorNameHover:             withAlpha(tealLight, 36),
	theme.ColorNameSelection:         withAlpha(tealLight, 80),
	theme.ColorNamePressed:           withAlpha(tealLight, 120),
	theme.ColorNameBackground:        color.NRGBA{R: 15, G: 23, B: 42, A: 255},
	theme.ColorNameInputBackground:   color.NRGBA{R: 30, G: 41, B: 59, A: 255},
	theme.ColorNameMenuBackground:    color.NRGBA{R: 30, G: 41, B: 59, A: 255},
	theme.ColorNameOverlayBackground: color.NRGBA{R: 30, G: 41, B: 59, A: 255},
	theme.ColorNameForeground:        color.NRGBA{R: 241, G: 245, B: 249, A: 255},
	theme.ColorNamePlaceHolder:       color.NRGBA{R: 100, G: 116, B: 139, A: 255},
	theme.ColorNameSeparator:         color.NRGBA{R: 51, G: 65, B: 85, A: 255},
	theme.ColorNameSuccess:           color.NRGBA{R: 74, G: 222, B: 128, A: 255},
	theme.ColorNameWarning:           coralAccent,
	theme.ColorNameError:             color.NRGBA{R: 248, G: 113, B: 113, A: 255},
}

// tripSizes must keep text plus inner padding within SuggestionRowHeight
var tripSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:            4,
	theme.SizeNameInnerPadding:       8,
	theme.SizeNameLineSpacing:        3,
	theme.SizeNameText:               14,
	theme.SizeNameHeadingText:        22,
	theme.SizeNameSubHeadingText:     16,
	theme.SizeNameCaptionText:        11,
	theme.SizeNameInputBorder:        1,
	theme.SizeNameInputRadius:        8,
	theme.SizeNameSelectionRadius:    6,
	theme.SizeNameScrollBar:          10,
	theme.SizeNameScrollBarSmall:     4,
	theme.SizeNameSeparatorThickness: 1,
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// TripTheme is the teal application theme. Names missing from the palettes
// fall back to the Fyne default.
type TripTheme struct{}

// NewTripTheme creates the application theme
func NewTripTheme() fyne.Theme {
	return &TripTheme{}
}

// Color returns the palette colour for the variant
func (t *TripTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	p := lightPalette
	if variant == theme.VariantDark {
		p = darkPalette
	}
	if c, ok := p[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (t *TripTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *TripTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the TripWise size for name
func (t *TripTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := tripSizes[name]; ok {
		return s
	}
	return theme.DefaultTheme().Size(name)
}
