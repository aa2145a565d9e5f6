// Package itinerary turns a received plan into display blocks and handles
// export and share payloads.
package itinerary

import (
	"net/url"
	"strings"

	"github.com/ytget/tripwise/internal/model"
)

// ActivityBlock is one activity row
type ActivityBlock struct {
	Name        string
	Time        string
	Description string
	Transport   string
	Price       string
	Link        string
}

// HasMap reports whether the activity carries an openable map link
func (a ActivityBlock) HasMap() bool {
	return MapURL(a.Link) != nil
}

// DayBlock is one day card
type DayBlock struct {
	Number     int
	Heading    string
	Activities []ActivityBlock
	// Tips is nil when the day has none; no tips block is shown then
	Tips []string
}

// ShowTips reports whether a tips block is rendered
func (d DayBlock) ShowTips() bool {
	return len(d.Tips) > 0
}

// View is the whole result page
type View struct {
	Destination string
	Summary     string
	Budget      string
	Days        []DayBlock
}

// Project maps an itinerary to display blocks, one per day and one per
// activity, in the order received
func Project(it model.Itinerary) View {
	v := View{
		Destination: it.Destination,
		Summary:     it.Summary(),
		Budget:      it.Budget,
		Days:        make([]DayBlock, 0, len(it.Days)),
	}
	for _, d := range it.Days {
		block := DayBlock{
			Number:     d.Day,
			Heading:    d.Heading(),
			Activities: make([]ActivityBlock, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			block.Activities = append(block.Activities, ActivityBlock{
				Name:        a.Name,
				Time:        a.Time,
				Description: a.Description,
				Transport:   a.Transport,
				Price:       a.Price,
				Link:        a.Link,
			})
		}
		if d.HasTips() {
			block.Tips = append([]string(nil), d.DailyTips...)
		}
		v.Days = append(v.Days, block)
	}
	return v
}

// MapURL parses an activity link; nil unless it is an absolute http(s) URL
func MapURL(link string) *url.URL {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	return u
}
