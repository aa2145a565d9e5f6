package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestMobileUI_DesktopLayout(t *testing.T) {
	m := NewMobileUI(test.NewTempApp(t))

	if m.IsMobileDevice() {
		t.Fatal("test driver should report a desktop device")
	}
	if got := m.Columns(4); got != 4 {
		t.Errorf("desktop keeps the requested columns, got %d", got)
	}

	btn := widget.NewButton("Go", nil)
	if m.TouchTarget(btn) != btn {
		t.Error("desktop controls should not be wrapped")
	}
}
