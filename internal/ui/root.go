package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// NoticeKind selects the style of a modal notification
type NoticeKind int

const (
	NoticeWarning NoticeKind = iota
	NoticeInfo
	NoticeComplete
	NoticeError
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	outputLabel   *widget.Label
	outputTitle   *widget.Label
	browseBtn     *widget.Button
	videoCheck    *widget.Check
	audioCheck    *widget.Check
	downloadBtn   *widget.Button
	pauseBtn      *widget.Button
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	statusLabel   *widget.Label

	outputDir string

	// notify shows one modal notification; replaced in tests
	notify func(kind NoticeKind, message string)
	// openFolder reveals the output folder after a completed download
	openFolder func(dir string) error
	// dialog helpers used by showDialog
	showInfo  func(title, message string, parent fyne.Window)
	showError func(err error, parent fyne.Window)
}

// NewRootUI creates and initializes the main UI. Updates from downloadSvc are
// applied until ctx is done.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, downloadSvc download.Downloader, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		logger:       logger,
		outputDir:    settings.GetOutputDirectory(),
		openFolder:   platform.OpenFolder,
		showInfo:     dialog.ShowInformation,
		showError:    dialog.ShowError,
	}
	ui.notify = ui.showDialog

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	go ui.pumpUpdates()

	logger.Debug("UI setup completed", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.outputTitle = widget.NewLabel("")
	ui.outputLabel = widget.NewLabel("")
	ui.outputLabel.Truncation = fyne.TextTruncateEllipsis
	ui.browseBtn = widget.NewButton("", ui.onBrowse)

	ui.videoCheck = widget.NewCheck("", nil)
	ui.videoCheck.SetChecked(ui.settings.GetIncludeVideo())
	ui.audioCheck = widget.NewCheck("", nil)
	ui.audioCheck.SetChecked(ui.settings.GetIncludeAudio())

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.pauseBtn = widget.NewButton("", ui.onTogglePause)
	ui.pauseBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Min = ProgressMin
	ui.progressBar.Max = ProgressMax
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.progressLabel = widget.NewLabel("")
	ui.progressLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	ui.refreshUITexts()

	urlRow := container.NewBorder(nil, nil, ui.urlLabel, settingsBtn, ui.urlEntry)
	outputRow := container.NewBorder(nil, nil, ui.outputTitle, ui.browseBtn, ui.outputLabel)
	optionsRow := container.NewHBox(ui.videoCheck, ui.audioCheck, widget.NewSeparator(), ui.downloadBtn, ui.pauseBtn)

	content := container.NewVBox(
		urlRow,
		outputRow,
		container.NewCenter(optionsRow),
		ui.progressBar,
		ui.progressLabel,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.urlLabel.SetText(l.GetText(KeyURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.outputTitle.SetText(l.GetText(KeyOutputFolder))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(KeyBrowse))
	ui.videoCheck.Text = l.GetText(KeyVideo)
	ui.videoCheck.Refresh()
	ui.audioCheck.Text = l.GetText(KeyAudio)
	ui.audioCheck.Refresh()
	ui.downloadBtn.SetText(l.GetText(KeyDownload))
	ui.updatePauseLabel(ui.downloadSvc.Paused())
	ui.updateOutputLabel()

	if ui.progressBar.Value == ProgressMin {
		ui.progressLabel.SetText(l.GetText(KeyProgressIdle))
	}
}

// updateOutputLabel shows the chosen folder or a placeholder
func (ui *RootUI) updateOutputLabel() {
	if ui.outputDir == "" {
		ui.outputLabel.SetText(ui.localization.GetText(KeyNoFolder))
		return
	}
	ui.outputLabel.SetText(ui.outputDir)
}

// updatePauseLabel switches the pause button between pause and resume
func (ui *RootUI) updatePauseLabel(paused bool) {
	if paused {
		ui.pauseBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyResume))
		return
	}
	ui.pauseBtn.SetText(IconPause + " " + ui.localization.GetText(KeyPause))
}

// onBrowse opens the native folder picker
func (ui *RootUI) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.logger.Warn("folder picker failed", zap.Error(err))
			return
		}
		if uri == nil {
			return
		}
		ui.setOutputDir(uri.Path())
	}, ui.window)
}

// setOutputDir records the chosen folder and remembers it for the next run
func (ui *RootUI) setOutputDir(dir string) {
	ui.outputDir = dir
	ui.settings.SetOutputDirectory(dir)
	ui.updateOutputLabel()
}

// currentRequest captures the form state
func (ui *RootUI) currentRequest() model.DownloadRequest {
	return model.NewDownloadRequest(ui.urlEntry.Text, ui.outputDir, ui.videoCheck.Checked, ui.audioCheck.Checked)
}

// onDownloadClick validates the form and starts a download
func (ui *RootUI) onDownloadClick() {
	req := ui.currentRequest()

	if err := req.Validate(ui.downloadSvc.Downloading()); err != nil {
		ui.showValidationError(err)
		return
	}

	attempt, err := ui.downloadSvc.Start(ui.ctx, req)
	if err != nil {
		ui.showValidationError(err)
		return
	}

	ui.settings.SetIncludeVideo(req.IncludeVideo)
	ui.settings.SetIncludeAudio(req.IncludeAudio)

	ui.updatePauseLabel(false)
	ui.pauseBtn.Enable()
	ui.resetProgress()
	ui.statusLabel.SetText(ui.localization.Format(KeyDownloadingTitle, attempt.GetDisplayTitle()))

	ui.logger.Info("download submitted",
		zap.String("attempt", attempt.ID),
		zap.String("url", req.URL),
		zap.Bool("video", req.IncludeVideo),
		zap.Bool("audio", req.IncludeAudio))
}

// showValidationError maps a pre-flight error to its notification
func (ui *RootUI) showValidationError(err error) {
	l := ui.localization
	switch {
	case errors.Is(err, model.ErrMissingURL):
		ui.notify(NoticeWarning, l.GetText(KeyPleaseEnterURL))
	case errors.Is(err, model.ErrMissingOutputDir):
		ui.notify(NoticeWarning, l.GetText(KeyPleaseChooseFolder))
	case errors.Is(err, model.ErrAlreadyDownloading):
		ui.notify(NoticeInfo, l.GetText(KeyAlreadyDownloading))
	case errors.Is(err, model.ErrNoStreamSelected):
		ui.notify(NoticeWarning, l.GetText(KeySelectStream))
	default:
		ui.notify(NoticeError, l.Format(KeyDownloadFailed, err.Error()))
	}
}

// onTogglePause flips the pause gate and relabels the button
func (ui *RootUI) onTogglePause() {
	ui.updatePauseLabel(ui.downloadSvc.TogglePause())
}

// pumpUpdates moves service updates onto the UI thread until ctx is done
func (ui *RootUI) pumpUpdates() {
	updates := ui.downloadSvc.Updates()
	for {
		select {
		case <-ui.ctx.Done():
			return
		case update := <-updates:
			fyne.Do(func() {
				ui.applyUpdate(update)
			})
		}
	}
}

// applyUpdate renders one service update. Must run on the UI thread.
func (ui *RootUI) applyUpdate(update model.Update) {
	switch update.Kind {
	case model.UpdateProgress:
		ui.progressBar.SetValue(update.Percent)
		ui.progressLabel.SetText(ui.localization.Format(KeyProgress, update.Label))

	case model.UpdateInfo:
		ui.statusLabel.SetText(update.Message)

	case model.UpdateFinished:
		ui.pauseBtn.Disable()
		ui.updatePauseLabel(false)
		ui.resetProgress()
		ui.statusLabel.SetText("")

		if update.Err != nil {
			ui.notify(NoticeError, ui.localization.Format(KeyDownloadFailed, update.Err.Error()))
			return
		}
		ui.notify(NoticeComplete, ui.localization.GetText(KeyDownloadComplete))

		if ui.settings.GetOpenFolderOnComplete() && update.Attempt != nil {
			dir := update.Attempt.Request.OutputDir
			if err := ui.openFolder(dir); err != nil {
				ui.logger.Warn("failed to open output folder", zap.String("dir", dir), zap.Error(err))
			}
		}
	}
}

// resetProgress returns the bar and label to zero
func (ui *RootUI) resetProgress() {
	ui.progressBar.SetValue(ProgressMin)
	ui.progressLabel.SetText(ui.localization.GetText(KeyProgressIdle))
}

// showDialog is the default notify implementation. Failures get the error
// dialog; everything else an information dialog with a localized title.
func (ui *RootUI) showDialog(kind NoticeKind, message string) {
	l := ui.localization
	switch kind {
	case NoticeWarning:
		ui.showInfo(l.GetText(KeyWarning), message, ui.window)
	case NoticeInfo:
		ui.showInfo(l.GetText(KeyInfo), message, ui.window)
	case NoticeComplete:
		ui.showInfo(l.GetText(KeyComplete), message, ui.window)
	case NoticeError:
		ui.showError(errors.New(message), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved preferences to the form
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.outputDir = ui.settings.GetOutputDirectory()
	ui.videoCheck.SetChecked(ui.settings.GetIncludeVideo())
	ui.audioCheck.SetChecked(ui.settings.GetIncludeAudio())
	ui.refreshUITexts()
	ui.createMenu()
}
