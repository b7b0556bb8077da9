package config

// Package config loads the static application configuration (file, .env and
// environment via viper) and manages user preferences stored through fyne.
