package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytpick/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	downloadDirEntry *widget.Entry
	backendSelect    *widget.Select
	ytdlpPathEntry   *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
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

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	backendOptions := []string{}
	for _, backend := range sd.settings.GetBackendOptions() {
		backendOptions = append(backendOptions, string(backend))
	}
	sd.backendSelect = widget.NewSelect(backendOptions, nil)

	sd.ytdlpPathEntry = widget.NewEntry()
	sd.ytdlpPathEntry.SetPlaceHolder(config.DefaultYtDlpPath)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	form := widget.NewForm(
		widget.NewFormItem(text(KeyDownloadDirectory), downloadDirRow),
		widget.NewFormItem(text(KeyBackend), sd.backendSelect),
		widget.NewFormItem(text(KeyYtDlpPath), sd.ytdlpPathEntry),
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
		widget.NewFormItem("", sd.autoRevealCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(SettingsDialogSize)
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.backendSelect.SetSelected(string(sd.settings.GetBackend()))
	sd.ytdlpPathEntry.SetText(sd.settings.GetYtDlpPath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	backendChanged := false
	if selected := config.Backend(sd.backendSelect.Selected); selected.Valid() {
		backendChanged = selected != sd.settings.GetBackend()
		sd.settings.SetBackend(selected)
	}
	sd.settings.SetYtDlpPath(sd.ytdlpPathEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if backendChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}
