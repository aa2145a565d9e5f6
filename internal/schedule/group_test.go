package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_EveryRunsUntilStop(t *testing.T) {
	g := NewGroup(context.Background())
	var fast, slow atomic.Int32

	g.Every(5*time.Millisecond, func() { fast.Add(1) })
	g.Every(20*time.Millisecond, func() { slow.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for slow.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	g.Stop()

	if slow.Load() < 2 {
		t.Fatalf("slow task ran %d times, expected at least 2", slow.Load())
	}
	if fast.Load() <= slow.Load() {
		t.Errorf("fast task (%d) should outpace slow task (%d)", fast.Load(), slow.Load())
	}

	after := fast.Load()
	time.Sleep(30 * time.Millisecond)
	if fast.Load() != after {
		t.Error("task ran after Stop returned")
	}
}

func TestGroup_StopIdempotent(t *testing.T) {
	g := NewGroup(context.Background())
	g.Every(time.Millisecond, func() {})

	g.Stop()
	g.Stop()

	select {
	case <-g.Done():
	default:
		t.Error("Done should be closed after Stop")
	}
}

func TestGroup_EveryAfterStopIsNoop(t *testing.T) {
	g := NewGroup(context.Background())
	g.Stop()

	var calls atomic.Int32
	g.Every(time.Millisecond, func() { calls.Add(1) })
	time.Sleep(20 * time.Millisecond)

	if calls.Load() != 0 {
		t.Errorf("stopped group ran a task %d times", calls.Load())
	}
}

func TestGroup_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGroup(ctx)

	var calls atomic.Int32
	g.Every(time.Millisecond, func() { calls.Add(1) })
	cancel()

	select {
	case <-g.Done():
	case <-time.After(time.Second):
		t.Fatal("group should stop with its parent")
	}

	g.Stop()
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Error("task ran after parent cancel and Stop")
	}
}

func TestGroup_StopWaitsForRunningBody(t *testing.T) {
	g := NewGroup(context.Background())
	started := make(chan struct{})
	var finished atomic.Bool

	var once atomic.Bool
	g.Every(time.Millisecond, func() {
		if once.Swap(true) {
			return
		}
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	g.Stop()
	if !finished.Load() {
		t.Error("Stop returned while a task body was still running")
	}
}
