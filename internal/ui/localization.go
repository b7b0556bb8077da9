package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyURL                  = "url"
	KeyEnterURL             = "enter_url"
	KeyOutputFolder         = "output_folder"
	KeyNoFolder             = "no_folder"
	KeyBrowse               = "browse"
	KeyVideo                = "video"
	KeyAudio                = "audio"
	KeyDownload             = "download"
	KeyPause                = "pause"
	KeyResume               = "resume"
	KeyProgress             = "progress"
	KeyProgressIdle         = "progress_idle"
	KeyWarning              = "warning"
	KeyInfo                 = "info"
	KeyComplete             = "complete"
	KeyError                = "error"
	KeyPleaseEnterURL       = "please_enter_url"
	KeyPleaseChooseFolder   = "please_choose_folder"
	KeyAlreadyDownloading   = "already_downloading"
	KeySelectStream         = "select_stream"
	KeyDownloadComplete     = "download_complete"
	KeyDownloadingTitle     = "downloading_title"
	KeyDownloadFailed       = "download_failed"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeySettingsSaved        = "settings_saved"
	KeyDefaultStreams       = "default_streams"
	KeyOpenFolderOnComplete = "open_folder_on_complete"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en":    "English",
		"zh-TW": "繁體中文",
		"ru":    "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Media Downloader",
		KeyURL:                  "Media URL:",
		KeyEnterURL:             "Paste a video URL",
		KeyOutputFolder:         "Output folder:",
		KeyNoFolder:             "No folder selected",
		KeyBrowse:               "Choose Folder",
		KeyVideo:                "Video",
		KeyAudio:                "Audio",
		KeyDownload:             "Download",
		KeyPause:                "Pause",
		KeyResume:               "Resume",
		KeyProgress:             "Progress: %s",
		KeyProgressIdle:         "Progress: 0%",
		KeyWarning:              "Warning",
		KeyInfo:                 "Notice",
		KeyComplete:             "Done",
		KeyError:                "Error",
		KeyPleaseEnterURL:       "Please enter a video URL",
		KeyPleaseChooseFolder:   "Please choose an output folder",
		KeyAlreadyDownloading:   "A download is in progress, please wait",
		KeySelectStream:         "Select video, audio, or both",
		KeyDownloadComplete:     "Download complete!",
		KeyDownloadingTitle:     "Downloading: %s",
		KeyDownloadFailed:       "Download failed: %s",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyDefaultStreams:       "Default streams",
		KeyOpenFolderOnComplete: "Open output folder when a download completes",
	}

	// Traditional Chinese texts
	l.texts["zh-TW"] = map[string]string{
		KeyAppTitle:             "影片下載器",
		KeyURL:                  "貼上影片網址:",
		KeyEnterURL:             "貼上影片網址",
		KeyOutputFolder:         "輸出資料夾:",
		KeyNoFolder:             "尚未選擇資料夾",
		KeyBrowse:               "選擇資料夾",
		KeyVideo:                "下載影片",
		KeyAudio:                "下載音訊",
		KeyDownload:             "下載",
		KeyPause:                "暫停",
		KeyResume:               "繼續",
		KeyProgress:             "進度: %s",
		KeyProgressIdle:         "進度: 0%",
		KeyWarning:              "警告",
		KeyInfo:                 "訊息",
		KeyComplete:             "完成",
		KeyError:                "錯誤",
		KeyPleaseEnterURL:       "請輸入影片網址",
		KeyPleaseChooseFolder:   "請選擇輸出資料夾",
		KeyAlreadyDownloading:   "正在下載中，請稍候",
		KeySelectStream:         "請至少選擇下載影片或音訊",
		KeyDownloadComplete:     "下載完成！",
		KeyDownloadingTitle:     "下載中: %s",
		KeyDownloadFailed:       "下載失敗：%s",
		KeySettings:             "設定",
		KeyFile:                 "檔案",
		KeyLanguage:             "語言",
		KeySave:                 "儲存",
		KeyCancel:               "取消",
		KeySettingsSaved:        "設定已儲存！",
		KeyDefaultStreams:       "預設下載內容",
		KeyOpenFolderOnComplete: "下載完成後開啟輸出資料夾",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Загрузчик видео",
		KeyURL:                  "URL видео:",
		KeyEnterURL:             "Вставьте URL видео",
		KeyOutputFolder:         "Папка загрузки:",
		KeyNoFolder:             "Папка не выбрана",
		KeyBrowse:               "Выбрать папку",
		KeyVideo:                "Видео",
		KeyAudio:                "Аудио",
		KeyDownload:             "Скачать",
		KeyPause:                "Пауза",
		KeyResume:               "Продолжить",
		KeyProgress:             "Прогресс: %s",
		KeyProgressIdle:         "Прогресс: 0%",
		KeyWarning:              "Предупреждение",
		KeyInfo:                 "Сообщение",
		KeyComplete:             "Готово",
		KeyError:                "Ошибка",
		KeyPleaseEnterURL:       "Пожалуйста, введите URL",
		KeyPleaseChooseFolder:   "Пожалуйста, выберите папку",
		KeyAlreadyDownloading:   "Загрузка уже идёт, подождите",
		KeySelectStream:         "Выберите видео, аудио или оба",
		KeyDownloadComplete:     "Загрузка завершена!",
		KeyDownloadingTitle:     "Загрузка: %s",
		KeyDownloadFailed:       "Ошибка загрузки: %s",
		KeySettings:             "Настройки",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyDefaultStreams:       "Потоки по умолчанию",
		KeyOpenFolderOnComplete: "Открывать папку после загрузки",
	}
}
