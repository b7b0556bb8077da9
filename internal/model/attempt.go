package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AttemptIDPrefix prefixes every attempt identifier
const AttemptIDPrefix = "attempt-"

// Attempt records one invocation of the engine for a request
type Attempt struct {
	ID         string
	Request    DownloadRequest
	Status     AttemptStatus
	Percent    float64 // last reported percentage, may exceed 100 when size is unknown
	LastError  string  // engine error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewAttempt creates a pending attempt for the request
func NewAttempt(req DownloadRequest) *Attempt {
	return &Attempt{
		ID:        AttemptIDPrefix + uuid.NewString(),
		Request:   req,
		Status:    AttemptStatusPending,
		StartedAt: time.Now(),
	}
}

// Finish marks the attempt completed, or failed when err is non-nil
func (a *Attempt) Finish(err error) {
	if err != nil {
		a.Status = AttemptStatusError
		a.LastError = err.Error()
	} else {
		a.Status = AttemptStatusCompleted
	}
	a.FinishedAt = time.Now()
}

// Elapsed returns how long the attempt ran, or has been running so far
func (a *Attempt) Elapsed() time.Duration {
	if !a.Status.IsFinished() {
		return time.Since(a.StartedAt)
	}
	return a.FinishedAt.Sub(a.StartedAt)
}

// GetElapsedString returns the elapsed time formatted as hh:mm:ss or mm:ss
func (a *Attempt) GetElapsedString() string {
	secs := int(a.Elapsed().Seconds())
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns the URL with scheme and "www." stripped
func (a *Attempt) GetDisplayTitle() string {
	title := a.Request.URL
	for _, prefix := range []string{"https://", "http://", "www."} {
		title = strings.TrimPrefix(title, prefix)
	}
	return title
}
