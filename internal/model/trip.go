package model

import "strings"

// TravelerType describes who is traveling
type TravelerType string

const (
	TravelerSolo         TravelerType = "solo"
	TravelerCouple       TravelerType = "couple"
	TravelerFamily       TravelerType = "family"
	TravelerGroup        TravelerType = "group"
	TravelerDigitalNomad TravelerType = "digital nomad"
)

// TravelStyle describes the pacing and flavour of the trip
type TravelStyle string

const (
	StyleRelaxed   TravelStyle = "relaxed"
	StylePacked    TravelStyle = "packed"
	StyleFoodie    TravelStyle = "foodie"
	StyleAdventure TravelStyle = "adventure"
	StyleParty     TravelStyle = "party"
	StyleHalal     TravelStyle = "halal"
	StyleBudget    TravelStyle = "budget"
	StyleLuxury    TravelStyle = "luxury"
)

// Form defaults
const (
	DefaultTravelers    = 2
	DefaultTravelerType = TravelerCouple
	DefaultTravelStyle  = StyleRelaxed

	// InterestSeparator joins selected interest pills into the free-text field
	InterestSeparator = ", "
)

// TripRequest is the body posted to the generation service.
// Field names follow the service wire format.
type TripRequest struct {
	Destination     string       `json:"destination"`
	StartDate       string       `json:"start_date"`
	EndDate         string       `json:"end_date"`
	NumTravelers    int          `json:"num_travelers"`
	TravelerType    TravelerType `json:"traveler_type"`
	TravelStyle     TravelStyle  `json:"travel_style"`
	Budget          string       `json:"budget"`
	Interests       string       `json:"interests"`
	SpecialRequests string       `json:"special_requests"`
}

// NewTripRequest returns a request populated with form defaults
func NewTripRequest() TripRequest {
	return TripRequest{
		NumTravelers: DefaultTravelers,
		TravelerType: DefaultTravelerType,
		TravelStyle:  DefaultTravelStyle,
	}
}

// HasWhereAndWhen reports whether destination and both dates are filled in
func (r TripRequest) HasWhereAndWhen() bool {
	return r.Destination != "" && r.StartDate != "" && r.EndDate != ""
}

// HasTravelers reports whether a positive traveler count is set
func (r TripRequest) HasTravelers() bool {
	return r.NumTravelers > 0
}

// Option is a selectable value with a display label
type Option struct {
	Value string
	Label string
	Emoji string
}

// DisplayLabel returns the emoji-prefixed label
func (o Option) DisplayLabel() string {
	if o.Emoji == "" {
		return o.Label
	}
	return o.Emoji + " " + o.Label
}

// TravelerTypeOptions lists traveler types in display order
func TravelerTypeOptions() []Option {
	return []Option{
		{Value: string(TravelerSolo), Label: "Solo Traveler", Emoji: "✈️"},
		{Value: string(TravelerCouple), Label: "Couple", Emoji: "💑"},
		{Value: string(TravelerFamily), Label: "Family", Emoji: "👨‍👩‍👧‍👦"},
		{Value: string(TravelerGroup), Label: "Group", Emoji: "👥"},
		{Value: string(TravelerDigitalNomad), Label: "Digital Nomad", Emoji: "💻"},
	}
}

// TravelStyleOptions lists travel styles in display order
func TravelStyleOptions() []Option {
	return []Option{
		{Value: string(StyleRelaxed), Label: "Relaxed", Emoji: "🏖️"},
		{Value: string(StylePacked), Label: "Packed with Activities", Emoji: "⚡"},
		{Value: string(StyleFoodie), Label: "Foodie", Emoji: "🍕"},
		{Value: string(StyleAdventure), Label: "Adventure", Emoji: "⛰️"},
		{Value: string(StyleParty), Label: "Party", Emoji: "🎉"},
		{Value: string(StyleHalal), Label: "Halal-Friendly", Emoji: "🕌"},
		{Value: string(StyleBudget), Label: "Budget", Emoji: "💰"},
		{Value: string(StyleLuxury), Label: "Luxury", Emoji: "✨"},
	}
}

// InterestOptions lists the interest pills offered on step 3
func InterestOptions() []Option {
	return []Option{
		{Value: "Museums", Label: "Museums", Emoji: "🏛️"},
		{Value: "Beaches", Label: "Beaches", Emoji: "🏖️"},
		{Value: "Food & Dining", Label: "Food & Dining", Emoji: "🍕"},
		{Value: "Nightlife", Label: "Nightlife", Emoji: "🎉"},
		{Value: "Nature", Label: "Nature", Emoji: "🌳"},
		{Value: "Shopping", Label: "Shopping", Emoji: "🛍️"},
		{Value: "Art & Culture", Label: "Art & Culture", Emoji: "🎨"},
		{Value: "Adventure", Label: "Adventure", Emoji: "⛰️"},
	}
}

// PopularDestinations are the quick-pick buttons on the landing view
func PopularDestinations() []Option {
	return []Option{
		{Value: "Paris", Label: "Paris", Emoji: "🗼"},
		{Value: "Tokyo", Label: "Tokyo", Emoji: "🗾"},
		{Value: "Barcelona", Label: "Barcelona", Emoji: "🏖️"},
		{Value: "New York", Label: "New York", Emoji: "🗽"},
		{Value: "Bali", Label: "Bali", Emoji: "🏝️"},
		{Value: "London", Label: "London", Emoji: "🏰"},
	}
}

// LabelFor returns the label of the option with the given value, or the value itself
func LabelFor(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.DisplayLabel()
		}
	}
	return value
}

// ValueFor maps a display label back to its option value
func ValueFor(options []Option, label string) (string, bool) {
	for _, o := range options {
		if o.DisplayLabel() == label || o.Label == label {
			return o.Value, true
		}
	}
	return "", false
}

// JoinInterests joins selected interests in selection order
func JoinInterests(selected []string) string {
	return strings.Join(selected, InterestSeparator)
}
