package planner

import (
	"context"

	"github.com/ytget/tripwise/internal/model"
)

// Generator is the remote side of a submission
type Generator interface {
	// Ping checks the service is reachable
	Ping(ctx context.Context) error
	// GenerateItinerary requests a plan for the trip
	GenerateItinerary(ctx context.Context, trip model.TripRequest) (*model.ItineraryDocument, error)
}

// Planner defines the form controller used by the UI.
type Planner interface {
	SetUpdateCallback(func(Snapshot))
	Snapshot() Snapshot

	SetDestination(v string)
	SetStartDate(v string)
	SetEndDate(v string)
	SetTravelers(n int)
	SetTravelersText(v string)
	SetTravelerType(v model.TravelerType)
	SetTravelStyle(v model.TravelStyle)
	SetBudget(v string)
	SetInterests(v string)
	SetSpecialRequests(v string)
	ToggleInterest(v string)

	Step() int
	CanProceed() bool
	Next() bool
	Back()

	Open()
	OpenWith(destination string)
	Cancel()

	// Submit runs one submission synchronously; callers run it off the UI goroutine
	Submit(ctx context.Context) error
	Reset()
}
