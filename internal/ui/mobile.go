package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// MobileUI provides mobile-specific layout decisions for the views
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	if m.app == nil || m.app.Driver() == nil {
		return false
	}
	return m.app.Driver().Device().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if !m.IsMobileDevice() {
		return true
	}
	orientation := m.app.Driver().Device().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// Columns returns the grid width for option buttons; phones in portrait get fewer
func (m *MobileUI) Columns(desktop int) int {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return max(1, desktop/2)
	}
	return desktop
}

// CreateAdaptiveContainer creates a grid that adapts to orientation
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(m.Columns(columns), objects...)
}

// TouchTarget gives a control a touch-sized row on mobile
func (m *MobileUI) TouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	return m.withMinHeight(obj, MobileButtonHeight)
}

// Centered constrains content to the form width on large screens
func (m *MobileUI) Centered(content fyne.CanvasObject) fyne.CanvasObject {
	if m.IsMobileDevice() {
		return container.NewPadded(content)
	}
	spacer := m.withMinWidth(FormMaxWidth)
	return container.NewHBox(layout.NewSpacer(), container.NewStack(spacer, content), layout.NewSpacer())
}

func (m *MobileUI) withMinWidth(width float32) fyne.CanvasObject {
	return canvasSpacer(fyne.NewSize(width, 0))
}

func (m *MobileUI) withMinHeight(obj fyne.CanvasObject, height float32) fyne.CanvasObject {
	return container.NewStack(canvasSpacer(fyne.NewSize(0, max(height, MinTouchTargetSize))), obj)
}

// canvasSpacer is an invisible object that only reserves a minimum size
func canvasSpacer(size fyne.Size) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(size)
	return r
}
