package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Nothing chosen yet
	if dir := settings.GetOutputDirectory(); dir != "" {
		t.Errorf("Expected empty output directory, got %s", dir)
	}

	customDir := "/custom/downloads"
	settings.SetOutputDirectory(customDir)

	if dir := settings.GetOutputDirectory(); dir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, dir)
	}
}

func TestStreamSelection(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetIncludeVideo() != DefaultIncludeVideo {
		t.Errorf("Expected default include video %v", DefaultIncludeVideo)
	}
	if settings.GetIncludeAudio() != DefaultIncludeAudio {
		t.Errorf("Expected default include audio %v", DefaultIncludeAudio)
	}

	settings.SetIncludeVideo(false)
	settings.SetIncludeAudio(true)

	if settings.GetIncludeVideo() {
		t.Error("Expected include video to be false")
	}
	if !settings.GetIncludeAudio() {
		t.Error("Expected include audio to be true")
	}
}

func TestOpenFolderOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetOpenFolderOnComplete() != DefaultOpenFolderComplete {
		t.Errorf("Expected default open folder %v", DefaultOpenFolderComplete)
	}

	settings.SetOpenFolderOnComplete(true)
	if !settings.GetOpenFolderOnComplete() {
		t.Error("Expected open folder on complete to be true")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("zh-TW")
	if lang := settings.GetLanguage(); lang != "zh-TW" {
		t.Errorf("Expected language zh-TW, got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())
	options := settings.GetLanguageOptions()

	for _, code := range []string{"system", "en", "zh-TW", "ru"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}
