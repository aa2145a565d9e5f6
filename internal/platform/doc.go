package platform

// Package platform contains OS integration glue: filesystem helpers, reveal
// and open for exported itineraries, and the native share intent on Android.
