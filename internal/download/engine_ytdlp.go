package download

import (
	"context"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/model"
)

// YTDLPEngine drives the yt-dlp executable through go-ytdlp
type YTDLPEngine struct {
	logger *zap.Logger
}

// NewYTDLPEngine creates the default engine
func NewYTDLPEngine(logger *zap.Logger) *YTDLPEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLPEngine{logger: logger}
}

// Download runs yt-dlp for a single URL. The progress callback is invoked
// from go-ytdlp's output reader, so blocking it holds back yt-dlp.
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts EngineOptions, progress ProgressFunc) error {
	dl := ytdlp.New().
		Format(opts.Format).
		Output(opts.OutputTemplate)

	if opts.FFmpegLocation != "" {
		dl = dl.FFmpegLocation(opts.FFmpegLocation)
	}
	if opts.Executable != "" {
		dl = dl.SetExecutable(opts.Executable)
	}

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	dl.ProgressFunc(interval, func(update ytdlp.ProgressUpdate) {
		progress(toProgressEvent(update))
	})

	res, err := dl.Run(ctx, url)
	if err != nil {
		if res != nil {
			e.logger.Debug("yt-dlp exited with error", zap.Int("exit_code", res.ExitCode), zap.String("stderr", res.Stderr))
		}
		return err
	}
	return nil
}

// toProgressEvent maps a go-ytdlp progress update onto the engine-neutral
// event. go-ytdlp already folds the size estimate into TotalBytes when the
// exact size is unknown.
func toProgressEvent(update ytdlp.ProgressUpdate) model.ProgressEvent {
	status := model.ProgressStatusOther
	if update.Status == ytdlp.ProgressStatusDownloading {
		status = model.ProgressStatusDownloading
	}

	return model.ProgressEvent{
		Status:          status,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}
}
