package model

// UpdateKind identifies what an Update carries
type UpdateKind int

const (
	// UpdateProgress carries a new percentage
	UpdateProgress UpdateKind = iota
	// UpdateInfo carries an informational message for the status line
	UpdateInfo
	// UpdateFinished is the terminal update of an attempt
	UpdateFinished
)

// String returns a short name for logging
func (k UpdateKind) String() string {
	switch k {
	case UpdateProgress:
		return "progress"
	case UpdateInfo:
		return "info"
	case UpdateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Update is a message from the download worker to the UI thread
type Update struct {
	Kind    UpdateKind
	Percent float64
	Label   string // formatted percentage for progress updates
	Message string // status line text for info updates
	Attempt *Attempt
	Err     error // set on a failed terminal update
}

// Succeeded reports whether a terminal update represents a completed download
func (u Update) Succeeded() bool {
	return u.Kind == UpdateFinished && u.Err == nil
}
