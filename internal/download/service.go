package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/session"
)

// Defaults for Options
const (
	DefaultUpdateBuffer     = 64
	DefaultProgressInterval = 250 * time.Millisecond
	PlaylistInfoFormat      = "Playlist with %d entries"
)

// Options configures the download service
type Options struct {
	OutputTemplate   string // filename template joined to the output directory
	FFmpegLocation   string
	Executable       string
	ProgressInterval time.Duration
	UpdateBuffer     int
}

// Service runs at most one download attempt at a time
type Service struct {
	engine    Engine
	playlists PlaylistInspector
	session   *session.State
	opts      Options
	updates   chan model.Update
	logger    *zap.Logger

	// mu guards the fields of the running attempt
	mu sync.Mutex
}

// NewService creates a new download service
func NewService(engine Engine, opts Options, logger *zap.Logger) *Service {
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	if opts.UpdateBuffer <= 0 {
		opts.UpdateBuffer = DefaultUpdateBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		engine:  engine,
		session: session.NewState(),
		opts:    opts,
		updates: make(chan model.Update, opts.UpdateBuffer),
		logger:  logger,
	}
}

// SetPlaylistInspector enables the playlist entry count before downloads
func (s *Service) SetPlaylistInspector(inspector PlaylistInspector) {
	s.playlists = inspector
}

// Updates returns the channel of updates for the UI thread
func (s *Service) Updates() <-chan model.Update {
	return s.updates
}

// Downloading reports whether an attempt is running
func (s *Service) Downloading() bool {
	return s.session.Downloading()
}

// Paused reports whether progress reporting is paused
func (s *Service) Paused() bool {
	return s.session.Paused()
}

// TogglePause flips the pause gate
func (s *Service) TogglePause() bool {
	paused := s.session.TogglePause()
	s.logger.Info("pause toggled", zap.Bool("paused", paused))
	return paused
}

// Start validates req and runs it on a new goroutine. Validation failures
// are returned as the model sentinel errors and start nothing.
func (s *Service) Start(ctx context.Context, req model.DownloadRequest) (*model.Attempt, error) {
	if err := req.Validate(s.session.Downloading()); err != nil {
		return nil, err
	}
	if !s.session.TryBegin() {
		return nil, model.ErrAlreadyDownloading
	}

	attempt := model.NewAttempt(req)
	go func() {
		_ = s.run(ctx, attempt)
	}()
	return attempt, nil
}

// Run downloads req on the calling goroutine and returns the engine error.
// The request must already be validated.
func (s *Service) Run(ctx context.Context, req model.DownloadRequest) error {
	if !s.session.TryBegin() {
		return model.ErrAlreadyDownloading
	}
	return s.run(ctx, model.NewAttempt(req))
}

// run is the worker body. The deferred block executes once on every exit
// path, including an engine panic.
func (s *Service) run(ctx context.Context, attempt *model.Attempt) (err error) {
	log := s.logger.With(zap.String("attempt", attempt.ID), zap.String("url", attempt.Request.URL))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panic: %v", r)
		}

		s.mu.Lock()
		attempt.Finish(err)
		s.mu.Unlock()

		s.session.End()

		if err != nil {
			log.Error("download failed", zap.Error(err), zap.String("elapsed", attempt.GetElapsedString()))
		} else {
			log.Info("download completed", zap.String("elapsed", attempt.GetElapsedString()))
		}

		s.emitTerminal(ctx, model.Update{Kind: model.UpdateFinished, Attempt: attempt, Err: err})
	}()

	s.mu.Lock()
	attempt.Status = model.AttemptStatusDownloading
	s.mu.Unlock()

	req := attempt.Request
	opts := EngineOptions{
		OutputTemplate:   req.OutputTemplate(s.opts.OutputTemplate),
		Format:           req.Format(),
		FFmpegLocation:   s.opts.FFmpegLocation,
		Executable:       s.opts.Executable,
		ProgressInterval: s.opts.ProgressInterval,
	}
	log.Info("starting download",
		zap.String("format", opts.Format),
		zap.String("output", opts.OutputTemplate),
		zap.String("ffmpeg", opts.FFmpegLocation))

	// Inspection runs alongside the engine and is cancelled when the attempt ends
	if s.playlists != nil && s.playlists.IsPlaylistURL(req.URL) {
		inspectCtx, cancelInspect := context.WithCancel(ctx)
		defer cancelInspect()
		go s.inspectPlaylist(inspectCtx, s.playlists, attempt, log)
	}

	reporter := NewReporter(s.session.Gate(), s.emit)
	return s.engine.Download(ctx, req.URL, opts, func(event model.ProgressEvent) {
		if percent, ok := reporter.OnProgress(ctx, event); ok {
			s.mu.Lock()
			attempt.Percent = percent
			s.mu.Unlock()
		}
	})
}

// inspectPlaylist posts the entry count of a playlist URL while the attempt
// is still active. It is cancelled when the attempt ends; failures only log.
func (s *Service) inspectPlaylist(ctx context.Context, inspector PlaylistInspector, attempt *model.Attempt, log *zap.Logger) {
	count, err := inspector.Inspect(ctx, attempt.Request.URL)
	if err != nil {
		log.Warn("playlist inspection failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !attempt.Status.IsActive() {
		log.Debug("playlist info dropped, attempt already finished", zap.Int("entries", count))
		return
	}

	log.Info("playlist detected", zap.Int("entries", count))
	s.emit(model.Update{Kind: model.UpdateInfo, Message: fmt.Sprintf(PlaylistInfoFormat, count)})
}

// emit posts a non-terminal update, dropping it when the UI is behind
func (s *Service) emit(update model.Update) {
	select {
	case s.updates <- update:
	default:
		s.logger.Debug("update dropped", zap.Stringer("kind", update.Kind))
	}
}

// emitTerminal blocks until the terminal update is queued so that it always
// follows the progress updates of the same attempt.
func (s *Service) emitTerminal(ctx context.Context, update model.Update) {
	select {
	case s.updates <- update:
	case <-ctx.Done():
		s.logger.Warn("terminal update not delivered", zap.Error(ctx.Err()))
	}
}
