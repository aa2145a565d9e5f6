package ui

// Package ui contains the Fyne-based user interface: landing view, the
// three-step trip form with destination autocomplete, the loading screen and
// the itinerary result with export and share. All UI strings are localized via
// Localization. Background work reaches widgets only through fyne.Do.
