package download

import (
	"context"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/session"
)

// Reporter turns engine progress events into progress updates.
type Reporter struct {
	gate *session.Gate
	emit func(model.Update)
}

// NewReporter creates a reporter that waits on gate and posts through emit
func NewReporter(gate *session.Gate, emit func(model.Update)) *Reporter {
	return &Reporter{gate: gate, emit: emit}
}

// OnProgress handles one engine event. Events other than downloading are
// ignored. While the gate is set the call blocks, which in turn holds the
// engine. It returns the posted percentage and whether anything was posted.
func (r *Reporter) OnProgress(ctx context.Context, event model.ProgressEvent) (float64, bool) {
	if event.Status != model.ProgressStatusDownloading {
		return 0, false
	}

	if err := r.gate.Wait(ctx); err != nil {
		return 0, false
	}

	percent := event.Percent()
	r.emit(model.Update{
		Kind:    model.UpdateProgress,
		Percent: percent,
		Label:   model.FormatPercent(percent),
	})
	return percent, true
}
