package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ytget/tripwise/internal/model"
)

const sampleBody = `{"app_name":"TripWise","id":"2b7c","trip":{"destination":"Lisbon","dates":"2026-05-01 - 2026-05-02","travelers":2,"traveler_type":"couple","travel_style":"foodie","budget":"1200","days":[
{"day":1,"title":"Alfama and Fado","activities":[
 {"name":"São Jorge Castle","time":"09:00 - 11:00","description":"Views!","link":"https://maps.google.com/?q=Sao+Jorge","transport":"Tram 28","price":"€15 per person"},
 {"name":"Pastéis de Belém","time":"12:00 - 13:00","description":"A local favorite","link":"","transport":"Bus 728","price":"€5"}
],"daily_tips":["Wear comfy shoes"]},
{"day":2,"title":"","activities":[{"name":"LX Factory","time":"10:00","description":"","link":"javascript:alert(1)","transport":"","price":""}],"daily_tips":[]}
]},"created_at":"2026-04-20T08:30:00Z","extra":{"model":"x"}}`

func sampleDocument(t *testing.T) *model.ItineraryDocument {
	t.Helper()
	doc, err := model.ParseItineraryDocument([]byte(sampleBody))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestProject(t *testing.T) {
	v := Project(sampleDocument(t).Trip())

	if v.Destination != "Lisbon" || v.Summary != "2026-05-01 - 2026-05-02 • 2 travelers • foodie style" {
		t.Errorf("unexpected header: %q / %q", v.Destination, v.Summary)
	}
	if len(v.Days) != 2 {
		t.Fatalf("expected 2 day blocks, got %d", len(v.Days))
	}

	day1 := v.Days[0]
	if day1.Heading != "Day 1: Alfama and Fado" || len(day1.Activities) != 2 {
		t.Errorf("day 1 = %+v", day1)
	}
	if day1.Activities[0].Name != "São Jorge Castle" || day1.Activities[1].Name != "Pastéis de Belém" {
		t.Error("activity order must be preserved")
	}
	if !day1.ShowTips() {
		t.Error("day 1 should show tips")
	}

	day2 := v.Days[1]
	if day2.Heading != "Day 2" || day2.ShowTips() {
		t.Errorf("day 2 = %+v", day2)
	}
}

func TestProject_KeepsReceivedOrder(t *testing.T) {
	it := model.Itinerary{Days: []model.Day{{Day: 3}, {Day: 1}, {Day: 2}}}
	v := Project(it)
	for i, want := range []int{3, 1, 2} {
		if v.Days[i].Number != want {
			t.Errorf("block %d has day %d, expected %d", i, v.Days[i].Number, want)
		}
	}
}

func TestMapURL(t *testing.T) {
	tests := []struct {
		link string
		ok   bool
	}{
		{"https://maps.google.com/?q=Sao+Jorge", true},
		{"http://example.com/map", true},
		{" https://maps.google.com/?q=x ", true},
		{"", false},
		{"javascript:alert(1)", false},
		{"maps.google.com/?q=x", false},
		{"ftp://example.com/x", false},
	}

	for _, tt := range tests {
		if got := MapURL(tt.link) != nil; got != tt.ok {
			t.Errorf("MapURL(%q) valid = %v, expected %v", tt.link, got, tt.ok)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		destination string
		format      Format
		expected    string
	}{
		{"Paris", FormatJSON, "Paris-itinerary.json"},
		{"New York", FormatPDF, "New York-itinerary.pdf"},
		{"Rio/Niterói", FormatJSON, "Rio-Niterói-itinerary.json"},
		{`a:b*c?"d<e>f|g\h`, FormatJSON, "a-b-c--d-e-f-g-h-itinerary.json"},
		{" .. ", FormatJSON, "trip-itinerary.json"},
		{"", FormatPDF, "trip-itinerary.pdf"},
		{"Tab\tCity", FormatJSON, "TabCity-itinerary.json"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FileName(tt.destination, tt.format); got != tt.expected {
				t.Errorf("FileName(%q) = %q, expected %q", tt.destination, got, tt.expected)
			}
		})
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	doc := sampleDocument(t)

	data, err := MarshalJSON(doc)
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  \"app_name\": \"TripWise\"")) {
		t.Errorf("expected two-space indentation, got:\n%s", data)
	}

	var parsed model.ItineraryResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(parsed, doc.Response) {
		t.Errorf("export does not match held document:\n%+v\n%+v", parsed, doc.Response)
	}

	var exported, received map[string]any
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(doc.Raw, &received); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(exported, received) {
		t.Error("export should carry every received field")
	}
}

func TestMarshalJSON_NoDocument(t *testing.T) {
	if _, err := MarshalJSON(nil); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
	if _, err := MarshalJSON(&model.ItineraryDocument{}); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument for empty raw, got %v", err)
	}
}

func TestExport(t *testing.T) {
	doc := sampleDocument(t)
	dir := filepath.Join(t.TempDir(), "exports")

	for _, f := range []Format{FormatJSON, FormatPDF} {
		t.Run(string(f), func(t *testing.T) {
			path, err := Export(dir, doc, f)
			if err != nil {
				t.Fatalf("Export() error: %v", err)
			}
			if filepath.Base(path) != FileName("Lisbon", f) {
				t.Errorf("unexpected file name %s", path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(data) == 0 {
				t.Error("exported file is empty")
			}
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	if _, err := Export(t.TempDir(), sampleDocument(t), Format("xml")); err == nil {
		t.Error("expected an error for an unknown format")
	}
	if _, err := Export(t.TempDir(), nil, FormatJSON); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sampleDocument(t))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 16)])
	}
}

func TestShare(t *testing.T) {
	s := NewShare("Kyoto", "https://tripwise.app")

	if s.Title != "Kyoto Trip" {
		t.Errorf("title = %q", s.Title)
	}
	if s.Text != "Check out my Kyoto trip plan made with TripWise!" {
		t.Errorf("text = %q", s.Text)
	}
	if s.ClipboardText() != s.Text+"\nhttps://tripwise.app" {
		t.Errorf("clipboard = %q", s.ClipboardText())
	}
	if s.FallbackMessage() != "Share via: WhatsApp, Email, or copy this link: https://tripwise.app" {
		t.Errorf("fallback = %q", s.FallbackMessage())
	}

	if got := NewShare("Kyoto", "").ClipboardText(); got != s.Text {
		t.Errorf("clipboard without URL = %q", got)
	}
}
