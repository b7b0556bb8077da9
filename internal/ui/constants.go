package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowWidth  float32 = 700
	WindowHeight float32 = 260

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// Progress bar range
const (
	ProgressMin = 0.0
	ProgressMax = 100.0
)
