package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/encoder"
	"github.com/ytget/media-downloader/internal/logger"
	"github.com/ytget/media-downloader/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:     "media-downloader",
		Short:   "Media Downloader - desktop front-end for yt-dlp",
		Long:    `Download a video, its audio, or both from a media URL into a local folder.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer env.logger.Sync() //nolint:errcheck
			return runGUI(env)
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./config.yaml or ~/.media-downloader/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(getCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// environment holds the services shared by the GUI and the get command
type environment struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *download.Service
}

// bootstrap loads configuration, builds the logger, resolves the external
// tools and wires the download service
func bootstrap(ctx context.Context) (*environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Media Downloader starting", zap.String("version", version))

	ytdlpPath, ffmpegPath := locateTools(ctx, cfg.Engine, log)

	svc := download.NewService(download.NewYTDLPEngine(log), download.Options{
		OutputTemplate:   cfg.Engine.OutputTemplate,
		FFmpegLocation:   ffmpegPath,
		Executable:       ytdlpPath,
		ProgressInterval: cfg.Engine.ProgressInterval,
	}, log)

	if cfg.Engine.PlaylistTimeout > 0 {
		inspector := platform.NewPlaylistInspector()
		inspector.SetTimeout(cfg.Engine.PlaylistTimeout)
		svc.SetPlaylistInspector(inspector)
	}

	return &environment{cfg: cfg, logger: log, service: svc}, nil
}

// locateTools resolves yt-dlp and ffmpeg. Neither is fatal at startup: an
// empty path leaves the choice to go-ytdlp, and single-stream downloads work
// without ffmpeg.
func locateTools(ctx context.Context, engine config.EngineConfig, log *zap.Logger) (ytdlpPath, ffmpegPath string) {
	if ytdlp, err := encoder.LocateYTDLP(ctx, engine.YTDLPPath, engine.YTDLPDownload); err != nil {
		log.Warn("yt-dlp not found, downloads will fail", zap.Error(err))
	} else {
		log.Info("yt-dlp located",
			zap.String("path", ytdlp.Path),
			zap.String("version", ytdlp.Version),
			zap.String("source", ytdlp.Source))
		ytdlpPath = ytdlp.Path
	}

	if ffmpeg, err := encoder.LocateFFmpeg(ctx, engine.FFmpegPath); err != nil {
		log.Warn("ffmpeg not found, merged downloads may fail", zap.Error(err))
	} else {
		log.Info("ffmpeg located",
			zap.String("path", ffmpeg.Path),
			zap.String("version", ffmpeg.Version),
			zap.String("source", ffmpeg.Source))
		ffmpegPath = ffmpeg.Path
	}
	return ytdlpPath, ffmpegPath
}
