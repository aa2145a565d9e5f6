package model

// Package model defines domain data structures used across the app: trip
// requests, itineraries as received from the generation service, reference
// cities, and submission status enums. Structures mirror the service wire
// format so they can be bound directly in the UI.
