package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyIncludeVideo       = "include_video"
	KeyIncludeAudio       = "include_audio"
	KeyOpenFolderComplete = "open_folder_on_complete"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultIncludeVideo       = true
	DefaultIncludeAudio       = true
	DefaultOpenFolderComplete = false
	DefaultLanguage           = "system"
)

// Settings manages user preferences that persist between runs
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the last chosen output directory, empty if none
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().String(KeyOutputDir)
}

// SetOutputDirectory remembers the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetIncludeVideo returns the default state of the video checkbox
func (s *Settings) GetIncludeVideo() bool {
	return s.app.Preferences().BoolWithFallback(KeyIncludeVideo, DefaultIncludeVideo)
}

// SetIncludeVideo sets the default state of the video checkbox
func (s *Settings) SetIncludeVideo(include bool) {
	s.app.Preferences().SetBool(KeyIncludeVideo, include)
}

// GetIncludeAudio returns the default state of the audio checkbox
func (s *Settings) GetIncludeAudio() bool {
	return s.app.Preferences().BoolWithFallback(KeyIncludeAudio, DefaultIncludeAudio)
}

// SetIncludeAudio sets the default state of the audio checkbox
func (s *Settings) SetIncludeAudio(include bool) {
	s.app.Preferences().SetBool(KeyIncludeAudio, include)
}

// GetOpenFolderOnComplete returns whether to open the output folder after a download
func (s *Settings) GetOpenFolderOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenFolderComplete, DefaultOpenFolderComplete)
}

// SetOpenFolderOnComplete sets whether to open the output folder after a download
func (s *Settings) SetOpenFolderOnComplete(open bool) {
	s.app.Preferences().SetBool(KeyOpenFolderComplete, open)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh-TW":  "繁體中文",
		"ru":     "Русский",
	}
}
