package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/progress"
)

// LoadingView shows simulated progress while a plan is generated
type LoadingView struct {
	simulator    *progress.Simulator
	localization *Localization

	destination *widget.Label
	bar         *widget.ProgressBar
	step        *widget.Label
	fact        *widget.Label
	content     fyne.CanvasObject

	// run changes on every Start and Stop; queued updates of an older run are dropped
	run atomic.Uint64
}

// NewLoadingView creates the view around a simulator
func NewLoadingView(sim *progress.Simulator, localization *Localization, mobile *MobileUI) *LoadingView {
	v := &LoadingView{simulator: sim, localization: localization}

	title := widget.NewLabelWithStyle(localization.GetText(KeyCreatingTrip), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.destination = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	v.bar = widget.NewProgressBar()
	v.bar.Max = 100
	v.bar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(v.bar.Value))
	}

	v.step = widget.NewLabel("")
	v.step.Alignment = fyne.TextAlignCenter

	v.fact = widget.NewLabel("")
	v.fact.Alignment = fyne.TextAlignCenter
	v.fact.Wrapping = fyne.TextWrapWord
	factCard := widget.NewCard("", localization.GetText(KeyDidYouKnow), v.fact)

	body := container.NewVBox(title, v.destination, v.bar, v.step, factCard)
	v.content = container.NewVBox(layout.NewSpacer(), mobile.Centered(body), layout.NewSpacer())
	return v
}

// Container returns the root object of the view
func (v *LoadingView) Container() fyne.CanvasObject {
	return v.content
}

// Start resets and runs the simulator; updates reach the widgets through fyne.Do
func (v *LoadingView) Start(ctx context.Context, destination string) {
	v.destination.SetText(IconPlane + " " + destination)
	run := v.run.Add(1)
	v.simulator.SetUpdateCallback(func(s progress.Snapshot) {
		fyne.Do(func() {
			if v.run.Load() == run {
				v.apply(s)
			}
		})
	})
	v.simulator.Start(ctx)
	v.apply(v.simulator.Snapshot())
}

// Stop halts the simulator. It is safe to call when not running.
// Updates already queued for the UI goroutine are discarded.
func (v *LoadingView) Stop() {
	v.run.Add(1)
	v.simulator.Stop()
}

func (v *LoadingView) apply(s progress.Snapshot) {
	v.bar.SetValue(float64(s.Percent))
	v.step.SetText(s.Step)
	v.fact.SetText(s.Fact)
}
