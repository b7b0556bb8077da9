package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultInspectTimeout = 30 * time.Second
)

// PlaylistParam is the query parameter carrying a YouTube playlist ID
const PlaylistParam = "list"

// youtubeHosts are the hosts whose list parameter names a YouTube playlist
var youtubeHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// PlaylistInspector counts the entries of a playlist URL using the ytdlp library
type PlaylistInspector struct {
	timeout time.Duration
}

// NewPlaylistInspector creates a new inspector
func NewPlaylistInspector() *PlaylistInspector {
	return &PlaylistInspector{
		timeout: DefaultInspectTimeout,
	}
}

// SetTimeout sets the timeout for inspection. Zero or negative keeps the default.
func (p *PlaylistInspector) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		p.timeout = timeout
	}
}

// IsPlaylistURL checks if the URL is a YouTube URL carrying a playlist ID
func (p *PlaylistInspector) IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// Inspect returns the number of entries in the playlist
func (p *PlaylistInspector) Inspect(ctx context.Context, rawURL string) (int, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return 0, fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to get playlist items: %w", err)
	}
	return len(items), nil
}

// ExtractPlaylistID returns the list query parameter of a YouTube URL, or ""
// for any other URL
func ExtractPlaylistID(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !youtubeHosts[strings.ToLower(u.Hostname())] {
		return ""
	}
	return u.Query().Get(PlaylistParam)
}
