package model

import "fmt"

// ProgressStatus is the engine-reported phase of a progress event
type ProgressStatus string

const (
	ProgressStatusDownloading ProgressStatus = "downloading"
	ProgressStatusOther       ProgressStatus = "other"
)

// PercentLabelFormat renders a percentage with one decimal place
const PercentLabelFormat = "%.1f%%"

// ProgressEvent is a snapshot of transfer counters delivered by the engine.
// Zero TotalBytes or TotalBytesEstimate means the value is unknown.
type ProgressEvent struct {
	Status             ProgressStatus
	DownloadedBytes    int64
	TotalBytes         int64
	TotalBytesEstimate int64
}

// Denominator returns the total size, the estimate, or 1 when neither is known.
func (e ProgressEvent) Denominator() int64 {
	if e.TotalBytes > 0 {
		return e.TotalBytes
	}
	if e.TotalBytesEstimate > 0 {
		return e.TotalBytesEstimate
	}
	return 1
}

// Percent returns downloaded bytes as a percentage of Denominator.
// With an unknown size the result is DownloadedBytes*100 and usually far
// above 100.
func (e ProgressEvent) Percent() float64 {
	return float64(e.DownloadedBytes) / float64(e.Denominator()) * 100
}

// FormatPercent renders a percentage for the progress label
func FormatPercent(percent float64) string {
	return fmt.Sprintf(PercentLabelFormat, percent)
}
