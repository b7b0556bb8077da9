package encoder

// Package encoder locates the external executables the download engine runs:
// yt-dlp itself and the ffmpeg it uses to merge video and audio streams.
