package download

// Package download runs a single download attempt on a worker goroutine on top
// of yt-dlp (via github.com/lrstanley/go-ytdlp). It turns engine progress into
// UI updates, holds progress while the session is paused, and always returns
// the session to idle when the attempt ends.
