package model

// SubmissionStatus represents the state of an itinerary submission
type SubmissionStatus string

const (
	// SubmissionStatusIdle means nothing has been submitted yet
	SubmissionStatusIdle SubmissionStatus = "Idle"

	// SubmissionStatusChecking means the connectivity pre-check is running
	SubmissionStatusChecking SubmissionStatus = "Checking"

	// SubmissionStatusGenerating means the itinerary request is outstanding
	SubmissionStatusGenerating SubmissionStatus = "Generating"

	// SubmissionStatusCompleted means an itinerary was received
	SubmissionStatusCompleted SubmissionStatus = "Completed"

	// SubmissionStatusFailed means the last attempt ended with an error
	SubmissionStatusFailed SubmissionStatus = "Failed"
)

// String returns the string representation of SubmissionStatus
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsActive returns true while a request is in flight
func (s SubmissionStatus) IsActive() bool {
	return s == SubmissionStatusChecking || s == SubmissionStatusGenerating
}

// IsFinished returns true if the last attempt settled (completed or failed)
func (s SubmissionStatus) IsFinished() bool {
	return s == SubmissionStatusCompleted || s == SubmissionStatusFailed
}
