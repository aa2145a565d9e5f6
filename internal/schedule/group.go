// Package schedule runs periodic tasks that start together and stop together.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Group is a set of periodic tasks sharing one lifetime. After Stop returns
// no task body runs again.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	once   sync.Once
}

// NewGroup creates a group bound to parent; cancelling parent stops every task
func NewGroup(parent context.Context) *Group {
	ctx, cancel := context.WithCancel(parent)
	return &Group{ctx: ctx, cancel: cancel}
}

// Every runs fn each interval until the group stops. It is a no-op on a
// stopped group.
func (g *Group) Every(interval time.Duration, fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ctx.Err() != nil {
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-g.ctx.Done():
				return
			case <-ticker.C:
				// Both channels may be ready; stop wins.
				if g.ctx.Err() != nil {
					return
				}
				g.run(fn)
			}
		}
	}()
}

// run holds the lock so Stop cannot return while a body is executing
func (g *Group) run(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ctx.Err() != nil {
		return
	}
	fn()
}

// Stop cancels every task and waits for them to exit. Safe to call more than
// once. Must not be called from inside a task body.
func (g *Group) Stop() {
	g.once.Do(func() {
		g.mu.Lock()
		g.cancel()
		g.mu.Unlock()
		g.wg.Wait()
	})
}

// Done is closed once the group is stopped or its parent is cancelled
func (g *Group) Done() <-chan struct{} {
	return g.ctx.Done()
}
