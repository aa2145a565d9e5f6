package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/tripwise/internal/progress"
)

func newTestLoadingView(t *testing.T) *LoadingView {
	t.Helper()
	app := test.NewTempApp(t)
	sim := progress.NewSimulator(
		progress.WithIntervals(time.Hour, time.Hour),
		progress.WithPicker(func(int) int { return 0 }),
	)
	return NewLoadingView(sim, NewLocalization(), NewMobileUI(app))
}

func TestLoadingView_StartShowsProgress(t *testing.T) {
	v := newTestLoadingView(t)
	v.Start(context.Background(), "Rome")
	defer v.Stop()

	v.simulator.Advance()
	v.simulator.Advance()

	if v.bar.Value != 2 {
		t.Errorf("expected 2%%, got %v", v.bar.Value)
	}
	if v.step.Text != progress.StepFor(2) {
		t.Errorf("unexpected step %q", v.step.Text)
	}
	if v.destination.Text != IconPlane+" Rome" {
		t.Errorf("unexpected destination %q", v.destination.Text)
	}
}

func TestLoadingView_NoUpdatesAfterStop(t *testing.T) {
	v := newTestLoadingView(t)
	v.Start(context.Background(), "Rome")
	v.simulator.Advance()

	v.Stop()
	v.simulator.Advance()
	v.simulator.RotateFact()

	if v.bar.Value != 1 {
		t.Errorf("progress changed after stop: %v", v.bar.Value)
	}

	// A new run resets the counter and delivers again
	v.Start(context.Background(), "Oslo")
	defer v.Stop()
	if v.bar.Value != 0 {
		t.Errorf("restart should reset progress, got %v", v.bar.Value)
	}
	v.simulator.Advance()
	if v.bar.Value != 1 {
		t.Errorf("restarted view should update, got %v", v.bar.Value)
	}
}
