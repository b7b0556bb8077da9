package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-downloader/internal/config"
)

// SettingsDialog represents the preferences dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry   *widget.Entry
	videoCheck       *widget.Check
	audioCheck       *widget.Check
	openFolderCheck  *widget.Check
	languageSelect   *widget.Select
	languageByName   map[string]string
	languageNameByID map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences are written and may be nil.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder(l.GetText(KeyNoFolder))
	browseDirBtn := widget.NewButton(IconFolder, sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.videoCheck = widget.NewCheck(l.GetText(KeyVideo), nil)
	sd.audioCheck = widget.NewCheck(l.GetText(KeyAudio), nil)
	sd.openFolderCheck = widget.NewCheck(l.GetText(KeyOpenFolderOnComplete), nil)

	// Language options are shown by display name, stored by code
	sd.languageByName = make(map[string]string)
	sd.languageNameByID = make(map[string]string)
	names := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageByName[name] = code
		sd.languageNameByID[code] = name
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyOutputFolder)),
		outputDirRow,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyDefaultStreams)),
		container.NewHBox(sd.videoCheck, sd.audioCheck),
		sd.openFolderCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.videoCheck.SetChecked(sd.settings.GetIncludeVideo())
	sd.audioCheck.SetChecked(sd.settings.GetIncludeAudio())
	sd.openFolderCheck.SetChecked(sd.settings.GetOpenFolderOnComplete())
	sd.languageSelect.SetSelected(sd.languageNameByID[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the dialog state to preferences
func (sd *SettingsDialog) save() {
	if dir := sd.outputDirEntry.Text; dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	sd.settings.SetIncludeVideo(sd.videoCheck.Checked)
	sd.settings.SetIncludeAudio(sd.audioCheck.Checked)
	sd.settings.SetOpenFolderOnComplete(sd.openFolderCheck.Checked)

	if code, ok := sd.languageByName[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
