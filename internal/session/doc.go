package session

// Package session holds the process-wide download session state shared
// between the UI thread and the download worker: the downloading flag and
// the pause gate that stalls progress reporting.
