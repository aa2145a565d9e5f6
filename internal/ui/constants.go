package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPin      = "📍"
	IconClock    = "🕐"
	IconTransit  = "🚶"
	IconPrice    = "💶"
	IconMap      = "🗺"
	IconTips     = "✨"
	IconPlane    = "✈️"
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	BulletPrefix        = "• "
)

// Layout sizing
const (
	WindowWidth  float32 = 820
	WindowHeight float32 = 680

	FormMaxWidth        float32 = 560
	SuggestionRowHeight float32 = 36

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Toast notification behavior
const (
	ToastAutoHide = 4 * time.Second
)

// Delays
const (
	// SuggestionCloseDelay lets a tap on a suggestion land before focus loss closes the panel
	SuggestionCloseDelay = 200 * time.Millisecond
)
