package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It validates the download form, hands requests to the download service, and
// applies the service's progress and completion updates on the UI thread.
// All UI strings are localized via Localization.
