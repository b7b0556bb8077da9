package model

import "testing"

func TestAttemptStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   AttemptStatus
		expected bool
	}{
		{AttemptStatusPending, true},
		{AttemptStatusDownloading, true},
		{AttemptStatusCompleted, false},
		{AttemptStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("AttemptStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestAttemptStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   AttemptStatus
		expected bool
	}{
		{AttemptStatusPending, false},
		{AttemptStatusDownloading, false},
		{AttemptStatusCompleted, true},
		{AttemptStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("AttemptStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestAttemptStatus_String(t *testing.T) {
	if got := AttemptStatusDownloading.String(); got != "Downloading" {
		t.Errorf("AttemptStatus.String() = %s, expected Downloading", got)
	}
}
