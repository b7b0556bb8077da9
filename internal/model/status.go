package model

// AttemptStatus represents the status of a single download attempt
type AttemptStatus string

const (
	// AttemptStatusPending means the attempt was accepted but the worker has not started
	AttemptStatusPending AttemptStatus = "Pending"

	// AttemptStatusDownloading means the engine is running
	AttemptStatusDownloading AttemptStatus = "Downloading"

	// AttemptStatusCompleted means the engine finished successfully
	AttemptStatusCompleted AttemptStatus = "Completed"

	// AttemptStatusError means the engine failed
	AttemptStatusError AttemptStatus = "Error"
)

// String returns the string representation of AttemptStatus
func (s AttemptStatus) String() string {
	return string(s)
}

// IsActive returns true while the attempt occupies the worker
func (s AttemptStatus) IsActive() bool {
	return s == AttemptStatusPending || s == AttemptStatusDownloading
}

// IsFinished returns true if the attempt completed or failed
func (s AttemptStatus) IsFinished() bool {
	return s == AttemptStatusCompleted || s == AttemptStatusError
}
