package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lrstanley/go-ytdlp"
)

// FFmpeg executable names
const (
	FFmpegCommand    = "ffmpeg"
	FFmpegWindowsExe = "ffmpeg.exe"
)

// Where a resolved executable came from
const (
	SourceConfig  = "config"
	SourceBundled = "bundled"
	SourceSystem  = "system"
)

// ErrNotFound is returned when no executable can be found
var ErrNotFound = errors.New("executable not found")

// Resolved describes a located executable. Version is empty when the path was
// taken from configuration or found next to the binary.
type Resolved struct {
	Path    string
	Version string
	Source  string
}

// go-ytdlp resolvers, replaced in tests
var (
	installFFmpeg = ytdlp.InstallFFmpeg
	installYTDLP  = ytdlp.Install
)

// ExecutableName returns the platform-specific ffmpeg file name
func ExecutableName() string {
	if runtime.GOOS == "windows" {
		return FFmpegWindowsExe
	}
	return FFmpegCommand
}

// LocateFFmpeg resolves ffmpeg. A configured path must exist. Without one, an
// ffmpeg next to the running binary wins over go-ytdlp's cache and PATH
// lookup. Nothing is downloaded.
func LocateFFmpeg(ctx context.Context, configured string) (*Resolved, error) {
	if configured != "" {
		if !isFile(configured) {
			return nil, fmt.Errorf("configured ffmpeg %s: %w", configured, ErrNotFound)
		}
		return &Resolved{Path: configured, Source: SourceConfig}, nil
	}

	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), ExecutableName())
		if isFile(bundled) {
			return &Resolved{Path: bundled, Source: SourceBundled}, nil
		}
	}

	install, err := installFFmpeg(ctx, &ytdlp.InstallFFmpegOptions{DisableDownload: true})
	if err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %v", ErrNotFound, err)
	}
	return &Resolved{Path: install.Executable, Version: install.Version, Source: SourceSystem}, nil
}

// LocateYTDLP resolves yt-dlp. A configured path must exist. Without one,
// go-ytdlp searches its cache and PATH and, when allowDownload is set,
// fetches the release it was built against.
func LocateYTDLP(ctx context.Context, configured string, allowDownload bool) (*Resolved, error) {
	if configured != "" {
		if !isFile(configured) {
			return nil, fmt.Errorf("configured yt-dlp %s: %w", configured, ErrNotFound)
		}
		return &Resolved{Path: configured, Source: SourceConfig}, nil
	}

	install, err := installYTDLP(ctx, &ytdlp.InstallOptions{
		DisableDownload:      !allowDownload,
		AllowVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: %w: %v", ErrNotFound, err)
	}
	return &Resolved{Path: install.Executable, Version: install.Version, Source: SourceSystem}, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
