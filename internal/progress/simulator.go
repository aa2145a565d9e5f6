// Package progress drives the fake progress shown while an itinerary is
// being generated. The service reports no real progress, so the percentage is
// a timer capped below completion.
package progress

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ytget/tripwise/internal/schedule"
)

// Timing and bounds
const (
	TickInterval = 400 * time.Millisecond
	FactInterval = 4 * time.Second
	Ceiling      = 95
)

// Step is a status line shown from Threshold percent onward
type Step struct {
	Threshold int
	Text      string
}

// Steps are ordered by threshold
var Steps = []Step{
	{0, "Mapping your adventure..."},
	{25, "Finding hidden gems..."},
	{50, "Picking perfect spots..."},
	{75, "Almost ready..."},
	{95, "Just a moment more..."},
}

// Facts rotate on the loading screen
var Facts = []string{
	"🌍 Over 195 countries to explore!",
	"✈️ The first airline meal was served in 1919",
	"🗼 The Eiffel Tower grows 6 inches in summer",
	"🏖️ There are more than 10,000 beaches in Australia",
	"🍝 Italy has more UNESCO sites than any country",
	"🎭 Venice has over 400 bridges",
	"🌸 Japan has over 3,000 cherry blossom trees",
	"🦁 Tanzania hosts the Great Migration every year",
	"🏔️ Mount Everest grows 4mm every year",
	"🎨 Barcelona has 9 UNESCO World Heritage Sites",
}

// StepFor returns the text of the last step whose threshold is <= percent
func StepFor(percent int) string {
	text := Steps[0].Text
	for _, s := range Steps {
		if s.Threshold > percent {
			break
		}
		text = s.Text
	}
	return text
}

// Snapshot is the visible state of the simulator
type Snapshot struct {
	Percent int
	Step    string
	Fact    string
}

// Option configures a Simulator
type Option func(*Simulator)

// WithPicker replaces the random fact picker; pick(n) must return [0, n)
func WithPicker(pick func(n int) int) Option {
	return func(s *Simulator) { s.pick = pick }
}

// WithIntervals overrides tick and fact rotation periods
func WithIntervals(tick, fact time.Duration) Option {
	return func(s *Simulator) {
		if tick > 0 {
			s.tick = tick
		}
		if fact > 0 {
			s.factEvery = fact
		}
	}
}

// Simulator advances a percentage and rotates facts while running
type Simulator struct {
	mu        sync.Mutex
	percent   int
	fact      int
	pick      func(n int) int
	tick      time.Duration
	factEvery time.Duration
	group     *schedule.Group
	onUpdate  func(Snapshot)
}

// NewSimulator creates a stopped simulator
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		pick:      rand.IntN,
		tick:      TickInterval,
		factEvery: FactInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the function called after every change.
// It runs on a scheduler goroutine.
func (s *Simulator) SetUpdateCallback(fn func(Snapshot)) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// Start resets the counter and the fact, then begins ticking. Starting a
// running simulator does nothing.
func (s *Simulator) Start(ctx context.Context) {
	s.mu.Lock()
	if s.group != nil {
		s.mu.Unlock()
		return
	}
	s.percent = 0
	s.fact = 0
	group := schedule.NewGroup(ctx)
	s.group = group
	s.mu.Unlock()

	s.notify()
	group.Every(s.tick, s.Advance)
	group.Every(s.factEvery, s.RotateFact)
}

// Stop halts ticking; no update is delivered after it returns
func (s *Simulator) Stop() {
	s.mu.Lock()
	group := s.group
	s.group = nil
	s.mu.Unlock()

	if group != nil {
		group.Stop()
	}
}

// Running reports whether the simulator is ticking
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group != nil
}

// Advance adds one percent up to Ceiling
func (s *Simulator) Advance() {
	s.mu.Lock()
	if s.percent >= Ceiling {
		s.mu.Unlock()
		return
	}
	s.percent++
	s.mu.Unlock()
	s.notify()
}

// RotateFact picks a new fact at random
func (s *Simulator) RotateFact() {
	s.mu.Lock()
	s.fact = s.pick(len(Facts))
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns the current state
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Simulator) snapshotLocked() Snapshot {
	return Snapshot{
		Percent: s.percent,
		Step:    StepFor(s.percent),
		Fact:    Facts[s.fact],
	}
}

func (s *Simulator) notify() {
	s.mu.Lock()
	fn := s.onUpdate
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
