package itinerary

import "fmt"

// Share is the payload handed to a native share sheet or the clipboard
type Share struct {
	Title string
	Text  string
	URL   string
}

// NewShare builds the share payload for a destination
func NewShare(destination, link string) Share {
	return Share{
		Title: destination + " Trip",
		Text:  fmt.Sprintf("Check out my %s trip plan made with TripWise!", destination),
		URL:   link,
	}
}

// ClipboardText is what gets copied when no share sheet exists
func (s Share) ClipboardText() string {
	if s.URL == "" {
		return s.Text
	}
	return s.Text + "\n" + s.URL
}

// FallbackMessage is shown after copying to the clipboard
func (s Share) FallbackMessage() string {
	return "Share via: WhatsApp, Email, or copy this link: " + s.URL
}
