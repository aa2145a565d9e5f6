// Package planner holds the multi-step trip form and issues at most one
// generation request at a time.
package planner

import (
	"context"
	"errors"
	"log"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/ytget/tripwise/internal/model"
)

// Step bounds
const (
	FirstStep = 1
	LastStep  = 3
)

var (
	// ErrSubmissionInFlight is returned when a submission is already running
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrIncomplete is returned when required fields are missing
	ErrIncomplete = errors.New("trip details are incomplete")
	// ErrNoItinerary is returned when the generator reports success without a document
	ErrNoItinerary = errors.New("service returned no itinerary")
)

// Snapshot is a copy of the controller state
type Snapshot struct {
	Request   model.TripRequest
	Step      int
	Interests []string
	FormOpen  bool
	Status    model.SubmissionStatus
	Result    *model.ItineraryDocument
	Err       error
}

// Loading reports whether a submission is outstanding
func (s Snapshot) Loading() bool {
	return s.Status.IsActive()
}

// Controller implements Planner.
type Controller struct {
	mu        sync.Mutex
	gen       Generator
	req       model.TripRequest
	step      int
	interests []string
	formOpen  bool
	status    model.SubmissionStatus
	result    *model.ItineraryDocument
	lastErr   error
	onUpdate  func(Snapshot)
}

// NewController creates a controller with default form values
func NewController(gen Generator) *Controller {
	return &Controller{
		gen:    gen,
		req:    model.NewTripRequest(),
		step:   FirstStep,
		status: model.SubmissionStatusIdle,
	}
}

// SetUpdateCallback sets the function called after every state change.
// It may run on a background goroutine.
func (c *Controller) SetUpdateCallback(fn func(Snapshot)) {
	c.mu.Lock()
	c.onUpdate = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Request:   c.req,
		Step:      c.step,
		Interests: slices.Clone(c.interests),
		FormOpen:  c.formOpen,
		Status:    c.status,
		Result:    c.result,
		Err:       c.lastErr,
	}
}

func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	cb := c.onUpdate
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

func (c *Controller) SetDestination(v string) { c.update(func() { c.req.Destination = v }) }
func (c *Controller) SetStartDate(v string)   { c.update(func() { c.req.StartDate = v }) }
func (c *Controller) SetEndDate(v string)     { c.update(func() { c.req.EndDate = v }) }
func (c *Controller) SetTravelers(n int)      { c.update(func() { c.req.NumTravelers = n }) }
func (c *Controller) SetBudget(v string)      { c.update(func() { c.req.Budget = v }) }

func (c *Controller) SetTravelerType(v model.TravelerType) {
	c.update(func() { c.req.TravelerType = v })
}

func (c *Controller) SetTravelStyle(v model.TravelStyle) {
	c.update(func() { c.req.TravelStyle = v })
}

func (c *Controller) SetSpecialRequests(v string) {
	c.update(func() { c.req.SpecialRequests = v })
}

// SetTravelersText parses a typed count; anything non-numeric sets 0
func (c *Controller) SetTravelersText(v string) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		n = 0
	}
	c.SetTravelers(n)
}

// SetInterests sets the free-text interests. Pills stay selected but the
// next toggle rewrites the text from the selection.
func (c *Controller) SetInterests(v string) {
	c.update(func() { c.req.Interests = v })
}

// ToggleInterest adds or removes a pill and rewrites the interests text
func (c *Controller) ToggleInterest(v string) {
	c.update(func() {
		if i := slices.Index(c.interests, v); i >= 0 {
			c.interests = slices.Delete(c.interests, i, i+1)
		} else {
			c.interests = append(c.interests, v)
		}
		c.req.Interests = model.JoinInterests(c.interests)
	})
}

// Step returns the current form step
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// CanProceed reports whether the current step is complete
func (c *Controller) CanProceed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepValidLocked()
}

func (c *Controller) stepValidLocked() bool {
	switch c.step {
	case 1:
		return c.req.HasWhereAndWhen()
	case 2:
		return c.req.HasTravelers()
	default:
		return true
	}
}

// Next advances one step when the current one validates
func (c *Controller) Next() bool {
	advanced := false
	c.update(func() {
		if c.step < LastStep && c.stepValidLocked() {
			c.step++
			advanced = true
		}
	})
	return advanced
}

// Back returns one step, stopping at the first
func (c *Controller) Back() {
	c.update(func() {
		if c.step > FirstStep {
			c.step--
		}
	})
}

// Open shows the form
func (c *Controller) Open() {
	c.update(func() { c.formOpen = true })
}

// OpenWith prefills the destination and shows the form
func (c *Controller) OpenWith(destination string) {
	c.update(func() {
		c.req.Destination = destination
		c.formOpen = true
	})
}

// Cancel hides the form, keeping what was typed
func (c *Controller) Cancel() {
	c.update(func() { c.formOpen = false })
}

// Submit checks connectivity and requests an itinerary. On success the form
// closes and returns to step 1; on failure every field is kept.
func (c *Controller) Submit(ctx context.Context) (err error) {
	var req model.TripRequest
	busy, incomplete := false, false
	c.update(func() {
		switch {
		case c.status.IsActive():
			busy = true
		case !c.req.HasWhereAndWhen() || !c.req.HasTravelers():
			incomplete = true
		default:
			req = c.req
			c.status = model.SubmissionStatusChecking
			c.lastErr = nil
		}
	})
	if busy {
		return ErrSubmissionInFlight
	}
	if incomplete {
		return ErrIncomplete
	}

	var doc *model.ItineraryDocument
	defer func() { c.settle(doc, err) }()

	if err = c.gen.Ping(ctx); err != nil {
		return err
	}

	c.update(func() { c.status = model.SubmissionStatusGenerating })

	doc, err = c.gen.GenerateItinerary(ctx, req)
	if err == nil && doc == nil {
		err = ErrNoItinerary
	}
	return err
}

func (c *Controller) settle(doc *model.ItineraryDocument, err error) {
	c.update(func() {
		if err != nil {
			c.status = model.SubmissionStatusFailed
			c.lastErr = err
			return
		}
		c.status = model.SubmissionStatusCompleted
		c.result = doc
		c.formOpen = false
		c.step = FirstStep
	})
	if err != nil {
		log.Printf("planner: submission failed: %v", err)
	} else {
		log.Printf("planner: itinerary %s ready", doc.Response.ID)
	}
}

// Reset clears the result and the form. It does nothing while a submission
// is outstanding.
func (c *Controller) Reset() {
	c.update(func() {
		if c.status.IsActive() {
			return
		}
		c.req = model.NewTripRequest()
		c.step = FirstStep
		c.interests = nil
		c.formOpen = false
		c.status = model.SubmissionStatusIdle
		c.result = nil
		c.lastErr = nil
	})
}
