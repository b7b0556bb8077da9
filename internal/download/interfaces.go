package download

import (
	"context"
	"time"

	"github.com/ytget/media-downloader/internal/model"
)

// ProgressFunc receives engine progress events. It may block; the engine
// stalls until it returns.
type ProgressFunc func(model.ProgressEvent)

// EngineOptions configures a single engine invocation
type EngineOptions struct {
	OutputTemplate   string        // full output path template
	Format           string        // format selection expression
	FFmpegLocation   string        // encoder executable, empty lets the engine search
	Executable       string        // yt-dlp executable, empty uses the engine default
	ProgressInterval time.Duration // how often the engine reports progress
}

// Engine resolves, downloads and muxes media for a URL. Download blocks until
// the transfer finishes and returns any failure.
type Engine interface {
	Download(ctx context.Context, url string, opts EngineOptions, progress ProgressFunc) error
}

// PlaylistInspector counts playlist entries ahead of a download
type PlaylistInspector interface {
	IsPlaylistURL(url string) bool
	Inspect(ctx context.Context, url string) (int, error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// Start validates the request and launches it on a worker goroutine
	Start(ctx context.Context, req model.DownloadRequest) (*model.Attempt, error)

	// Updates delivers progress and terminal updates for the UI thread
	Updates() <-chan model.Update

	// TogglePause flips the pause gate and returns the new paused state
	TogglePause() bool

	Downloading() bool
	Paused() bool
}
