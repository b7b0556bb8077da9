package model

// Package model defines domain data structures used across the app: download
// requests and their format policy, progress events, attempts, and the
// updates passed from the download worker to the UI.
