package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// barMax is the terminal bar range; percentages past it pin the bar full
const barMax = 100

var getCmd = &cobra.Command{
	Use:   "get [url]",
	Short: "Download a URL without opening the window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		video, _ := cmd.Flags().GetBool("video")
		audio, _ := cmd.Flags().GetBool("audio")

		if out == "" {
			dir, err := platform.GetHomeDownloadsDir()
			if err != nil {
				return err
			}
			out = dir
		}

		req := model.NewDownloadRequest(args[0], out, video, audio)
		if err := req.Validate(false); err != nil {
			return err
		}
		if err := platform.CreateDirectoryIfNotExists(out); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		env, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer env.logger.Sync() //nolint:errcheck

		return runHeadless(ctx, env, req, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	getCmd.Flags().String("out", "", "Output directory (default ~/Downloads)")
	getCmd.Flags().Bool("video", true, "Include the video stream")
	getCmd.Flags().Bool("audio", true, "Include the audio stream")
}

// runHeadless drives one download, drawing the progress bar and playlist
// notices on stderr and the completion line on stdout
func runHeadless(ctx context.Context, env *environment, req model.DownloadRequest, stdout, stderr io.Writer) error {
	bar := progressbar.NewOptions(barMax,
		progressbar.OptionSetDescription(req.URL),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case update := <-env.service.Updates():
				switch update.Kind {
				case model.UpdateProgress:
					bar.Describe(update.Label)
					_ = bar.Set(min(int(update.Percent), barMax))
				case model.UpdateInfo:
					fmt.Fprintln(stderr, update.Message)
				case model.UpdateFinished:
					_ = bar.Finish()
					return
				}
			}
		}
	}()

	err := env.service.Run(ctx, req)
	<-done

	if err != nil {
		env.logger.Error("download failed", zap.String("url", req.URL), zap.Error(err))
		return fmt.Errorf("download failed: %w", err)
	}
	fmt.Fprintln(stdout, "Download complete!")
	return nil
}
