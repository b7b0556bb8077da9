package download

import (
	"context"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/session"
)

func TestReporter_OnProgress(t *testing.T) {
	tests := []struct {
		name    string
		event   model.ProgressEvent
		posted  bool
		percent float64
		label   string
	}{
		{
			name:    "known total",
			event:   downloading(50, 200),
			posted:  true,
			percent: 25.0,
			label:   "25.0%",
		},
		{
			name:    "unknown total uses denominator of one",
			event:   model.ProgressEvent{Status: model.ProgressStatusDownloading, DownloadedBytes: 3},
			posted:  true,
			percent: 300.0,
			label:   "300.0%",
		},
		{
			name:   "non-downloading status ignored",
			event:  model.ProgressEvent{Status: model.ProgressStatusOther, DownloadedBytes: 50, TotalBytes: 200},
			posted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []model.Update
			r := NewReporter(session.NewGate(), func(u model.Update) { got = append(got, u) })

			percent, ok := r.OnProgress(context.Background(), tt.event)
			assert.Equal(t, tt.posted, ok)
			if !tt.posted {
				assert.Empty(t, got)
				return
			}

			require.Len(t, got, 1)
			assert.Equal(t, model.UpdateProgress, got[0].Kind)
			assert.InDelta(t, tt.percent, percent, 1e-9)
			assert.InDelta(t, tt.percent, got[0].Percent, 1e-9)
			assert.Equal(t, tt.label, got[0].Label)
		})
	}
}

func TestReporter_PausedContextCancelled(t *testing.T) {
	gate := session.NewGate()
	gate.Toggle()

	posted := false
	r := NewReporter(gate, func(model.Update) { posted = true })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok := r.OnProgress(ctx, downloading(1, 2))
	assert.False(t, ok)
	assert.False(t, posted)
}

func TestToProgressEvent(t *testing.T) {
	ev := toProgressEvent(ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 50,
		TotalBytes:      200,
	})
	assert.Equal(t, model.ProgressStatusDownloading, ev.Status)
	assert.Equal(t, int64(50), ev.DownloadedBytes)
	assert.Equal(t, int64(200), ev.TotalBytes)
	assert.InDelta(t, 25.0, ev.Percent(), 1e-9)

	ev = toProgressEvent(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusFinished})
	assert.Equal(t, model.ProgressStatusOther, ev.Status)
}
