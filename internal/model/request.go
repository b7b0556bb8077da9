package model

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors returned by DownloadRequest.Validate, in check order.
var (
	ErrMissingURL         = errors.New("media URL is required")
	ErrMissingOutputDir   = errors.New("output directory is required")
	ErrAlreadyDownloading = errors.New("a download is already in progress")
	ErrNoStreamSelected   = errors.New("select video, audio, or both")
)

// Format selection expressions understood by the engine
const (
	FormatVideoOnly = "bestvideo+bestaudio/bestvideo"
	FormatAudioOnly = "bestaudio/best"
	FormatCombined  = "bestvideo+bestaudio/best"
)

// DefaultOutputTemplate names output files after the media title
const DefaultOutputTemplate = "%(title)s.%(ext)s"

// DownloadRequest is the form state captured when the user submits a download.
// It is not modified while the download runs.
type DownloadRequest struct {
	URL          string
	OutputDir    string
	IncludeVideo bool
	IncludeAudio bool
}

// NewDownloadRequest builds a request from raw form values
func NewDownloadRequest(url, outputDir string, includeVideo, includeAudio bool) DownloadRequest {
	return DownloadRequest{
		URL:          strings.TrimSpace(url),
		OutputDir:    outputDir,
		IncludeVideo: includeVideo,
		IncludeAudio: includeAudio,
	}
}

// Validate runs the pre-flight checks. downloading reports whether another
// download is currently running.
func (r DownloadRequest) Validate(downloading bool) error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrMissingURL
	}
	if r.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if downloading {
		return ErrAlreadyDownloading
	}
	if !r.IncludeVideo && !r.IncludeAudio {
		return ErrNoStreamSelected
	}
	return nil
}

// Format returns the engine format expression for the selected streams.
// Video-only still prefers muxing in the best audio and falls back to a
// video-only stream.
func (r DownloadRequest) Format() string {
	switch {
	case r.IncludeVideo && !r.IncludeAudio:
		return FormatVideoOnly
	case !r.IncludeVideo && r.IncludeAudio:
		return FormatAudioOnly
	default:
		return FormatCombined
	}
}

// OutputTemplate joins the output directory with a filename template.
// An empty template falls back to DefaultOutputTemplate.
func (r DownloadRequest) OutputTemplate(template string) string {
	if template == "" {
		template = DefaultOutputTemplate
	}
	return filepath.Join(r.OutputDir, template)
}
