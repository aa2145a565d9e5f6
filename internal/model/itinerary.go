package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Activity is a single scheduled item within a day
type Activity struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Transport   string `json:"transport"`
	Price       string `json:"price"`
}

// Day is one day of the plan. Activities keep the order they were received in.
type Day struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	DailyTips  []string   `json:"daily_tips"`
}

// HasTips reports whether the day carries any tips
func (d Day) HasTips() bool {
	return len(d.DailyTips) > 0
}

// Heading returns the "Day N: Title" line
func (d Day) Heading() string {
	if d.Title == "" {
		return fmt.Sprintf("Day %d", d.Day)
	}
	return fmt.Sprintf("Day %d: %s", d.Day, d.Title)
}

// Itinerary is the generated trip plan
type Itinerary struct {
	Destination  string `json:"destination"`
	Dates        string `json:"dates"`
	Travelers    int    `json:"travelers"`
	TravelerType string `json:"traveler_type"`
	TravelStyle  string `json:"travel_style"`
	Budget       string `json:"budget"`
	Days         []Day  `json:"days"`
}

// Summary returns the "dates • N travelers • style style" line
func (it Itinerary) Summary() string {
	return fmt.Sprintf("%s • %d travelers • %s style", it.Dates, it.Travelers, it.TravelStyle)
}

// ItineraryResponse is the envelope returned by the generation service
type ItineraryResponse struct {
	AppName   string    `json:"app_name"`
	ID        string    `json:"id"`
	Trip      Itinerary `json:"trip"`
	CreatedAt time.Time `json:"created_at"`
}

// ItineraryDocument holds a parsed response together with the bytes it was
// decoded from. Raw is what gets exported; it is never re-encoded from Response.
type ItineraryDocument struct {
	Response ItineraryResponse
	Raw      json.RawMessage
}

// ParseItineraryDocument decodes a service response and keeps a private copy of the body
func ParseItineraryDocument(body []byte) (*ItineraryDocument, error) {
	var resp ItineraryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary: %w", err)
	}

	raw := make(json.RawMessage, len(body))
	copy(raw, body)

	return &ItineraryDocument{Response: resp, Raw: raw}, nil
}

// Trip is a shortcut for the itinerary inside the envelope
func (d *ItineraryDocument) Trip() Itinerary {
	return d.Response.Trip
}
