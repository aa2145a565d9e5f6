package model

import "testing"

func TestSubmissionStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   SubmissionStatus
		expected bool
	}{
		{SubmissionStatusIdle, false},
		{SubmissionStatusChecking, true},
		{SubmissionStatusGenerating, true},
		{SubmissionStatusCompleted, false},
		{SubmissionStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("SubmissionStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSubmissionStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   SubmissionStatus
		expected bool
	}{
		{SubmissionStatusIdle, false},
		{SubmissionStatusChecking, false},
		{SubmissionStatusGenerating, false},
		{SubmissionStatusCompleted, true},
		{SubmissionStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("SubmissionStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSubmissionStatus_String(t *testing.T) {
	status := SubmissionStatusGenerating
	expected := "Generating"
	result := status.String()

	if result != expected {
		t.Errorf("SubmissionStatus.String() = %s, expected %s", result, expected)
	}
}
