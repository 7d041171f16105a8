package ui

import (
	"context"
	"errors"
	"image"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/download"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/resolver"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	downloads  download.Downloader
	playlists  *platform.PlaylistService
	thumbnails *platform.ThumbnailFetcher

	urlLabel     *widget.Label
	urlEntry     *widget.Entry
	searchBtn    *widget.Button
	thumbnail    *canvas.Image
	titleCard    *widget.Card
	titleLabel   *widget.Label
	qualityCard  *widget.Card
	formatSelect *widget.Select
	locationCard *widget.Card
	folderLabel  *widget.Label
	browseBtn    *widget.Button
	progressBar  *widget.ProgressBar
	statusLabel  *widget.Label
	detailLabel  *widget.Label
	downloadBtn  *widget.Button
	revealBtn    *widget.Button
	themeBtn     *widget.Button

	// Fyne-thread state
	hasSession bool
	lastOutput string
	thumbSeq   int
}

var _ download.Listener = (*RootUI)(nil)

// NewRootUI creates the main window content and the download service behind it
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, mediaResolver resolver.MediaResolver) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		playlists:    platform.NewPlaylistService(),
		thumbnails:   platform.NewThumbnailFetcher(),
	}
	ui.downloads = download.NewService(mediaResolver, ui, download.WithDispatcher(fyne.Do))

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

func (ui *RootUI) text(key string) string {
	return ui.localization.GetText(key)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.text(KeyURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.text(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}
	ui.searchBtn = widget.NewButton(ui.text(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, ui.urlLabel, container.NewHBox(ui.searchBtn, settingsBtn), ui.urlEntry)

	ui.thumbnail = canvas.NewImageFromImage(PlaceholderImage())
	ui.thumbnail.FillMode = canvas.ImageFillContain
	ui.thumbnail.SetMinSize(ThumbnailMinSize)

	ui.titleLabel = widget.NewLabel(ui.text(KeyNoVideo))
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.titleCard = widget.NewCard(ui.text(KeyVideoTitle), "", ui.titleLabel)

	ui.formatSelect = widget.NewSelect(nil, nil)
	ui.formatSelect.Disable()
	ui.qualityCard = widget.NewCard(ui.text(KeySelectQuality), "", ui.formatSelect)

	ui.folderLabel = widget.NewLabel(ui.settings.GetDownloadDirectory())
	ui.folderLabel.Wrapping = fyne.TextWrapBreak
	ui.browseBtn = widget.NewButton(ui.text(KeyBrowse), ui.onBrowseDirectory)
	ui.locationCard = widget.NewCard(ui.text(KeyDownloadLocation), "",
		container.NewBorder(nil, nil, nil, ui.browseBtn, ui.folderLabel))

	options := container.NewVBox(ui.titleCard, ui.qualityCard, ui.locationCard)
	info := container.NewGridWithColumns(2, ui.thumbnail, options)

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.text(KeyReady))
	ui.detailLabel = widget.NewLabel("")
	ui.downloadBtn = widget.NewButton(ui.text(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()
	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.text(KeyShowInFolder), func() {
		ui.onRevealFile(ui.lastOutput)
	})
	ui.revealBtn.Disable()
	ui.themeBtn = widget.NewButton(ui.text(KeyToggleTheme), ui.onToggleTheme)

	buttons := container.NewBorder(nil, nil,
		container.NewHBox(ui.downloadBtn, ui.statusLabel),
		container.NewHBox(ui.revealBtn, ui.themeBtn),
		ui.detailLabel)
	bottomPanel := container.NewVBox(ui.progressBar, buttons)

	content := container.NewBorder(topPanel, bottomPanel, nil, nil, info)
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.text(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.text(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.text(KeyFile), settingsItem),
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

// refreshUITexts updates all static texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.text(KeyAppTitle))
	ui.urlLabel.SetText(ui.text(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.text(KeyEnterURL))
	ui.searchBtn.SetText(ui.text(KeySearch))
	ui.titleCard.SetTitle(ui.text(KeyVideoTitle))
	ui.qualityCard.SetTitle(ui.text(KeySelectQuality))
	ui.locationCard.SetTitle(ui.text(KeyDownloadLocation))
	ui.browseBtn.SetText(ui.text(KeyBrowse))
	ui.downloadBtn.SetText(ui.text(KeyDownload))
	ui.revealBtn.SetText(IconFolder + " " + ui.text(KeyShowInFolder))
	ui.themeBtn.SetText(ui.text(KeyToggleTheme))
	if !ui.hasSession {
		ui.titleLabel.SetText(ui.text(KeyNoVideo))
	}
}

// onSearchClick resolves the entered URL, or expands it first when it only
// names a playlist
func (ui *RootUI) onSearchClick() {
	urlText := cleanInput(ui.urlEntry.Text)
	if urlText == "" {
		ui.showError(ui.text(KeyPleaseEnterURL))
		return
	}

	if platform.IsPlaylistURL(urlText) && platform.ExtractVideoID(urlText) == "" {
		ui.handlePlaylistURL(urlText)
		return
	}
	ui.search(urlText)
}

// search runs Resolve off the Fyne thread
func (ui *RootUI) search(url string) {
	log.Printf("Searching URL: %s", url)
	ui.statusLabel.SetText(ui.text(KeyFetching))
	ui.searchBtn.Disable()

	go func() {
		session, err := ui.downloads.Resolve(context.Background(), url)
		fyne.Do(func() {
			ui.onResolved(session, err)
		})
	}()
}

func (ui *RootUI) onResolved(session *model.VideoSession, err error) {
	if !ui.downloads.Running() {
		ui.searchBtn.Enable()
	}

	if err != nil {
		message := ui.resolveErrorText(err)
		ui.statusLabel.SetText(message)
		ui.showError(message)
		return
	}

	ui.hasSession = true
	ui.titleLabel.SetText(session.Title)
	ui.formatSelect.Options = session.Labels()
	ui.formatSelect.ClearSelected()
	ui.formatSelect.Refresh()
	ui.loadThumbnail(session.ThumbnailURL)

	if len(ui.formatSelect.Options) == 0 {
		ui.formatSelect.Disable()
		ui.downloadBtn.Disable()
		ui.statusLabel.SetText(ui.text(KeyNoFormats))
		return
	}

	ui.formatSelect.SetSelectedIndex(0)
	ui.formatSelect.Enable()
	if !ui.downloads.Running() {
		ui.downloadBtn.Enable()
	}
	ui.statusLabel.SetText(ui.text(KeyVideoFound))
}

// loadThumbnail fetches and decodes the thumbnail in the background. Results
// of a superseded search are discarded.
func (ui *RootUI) loadThumbnail(url string) {
	ui.thumbSeq++
	seq := ui.thumbSeq
	ui.setThumbnail(PlaceholderImage())
	if url == "" {
		return
	}

	go func() {
		var img image.Image
		data, err := ui.thumbnails.Fetch(context.Background(), url)
		if err == nil {
			img, err = DecodeThumbnail(data)
		}
		if err != nil {
			log.Printf("Error loading thumbnail: %v", err)
			return
		}
		fyne.Do(func() {
			if seq == ui.thumbSeq {
				ui.setThumbnail(img)
			}
		})
	}()
}

func (ui *RootUI) setThumbnail(img image.Image) {
	ui.thumbnail.Image = img
	ui.thumbnail.Refresh()
}

// onDownloadClick starts a job for the selected format
func (ui *RootUI) onDownloadClick() {
	label := ui.formatSelect.Selected
	if label == "" {
		ui.showError(ui.text(KeyPleaseSelect))
		return
	}

	job, err := ui.downloads.Start(label, ui.settings.GetDownloadDirectory())
	if err != nil {
		log.Printf("Cannot start download: %v", err)
		ui.showError(ui.startErrorText(err))
		return
	}

	log.Printf("Download started: ID=%s, Format=%s", job.ID, job.Entry.Label)
	ui.setRunning(true)
	ui.revealBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.detailLabel.SetText("")
	ui.statusLabel.SetText(ui.text(KeyStartingDownload))
}

func (ui *RootUI) resolveErrorText(err error) string {
	if errors.Is(err, download.ErrInvalidURL) {
		return ui.text(KeyInvalidURL)
	}
	var resolveErr *download.ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Message()
	}
	return err.Error()
}

func (ui *RootUI) startErrorText(err error) string {
	var selErr *download.SelectionError
	var destErr *download.DestinationError
	switch {
	case errors.Is(err, download.ErrJobRunning):
		return ui.text(KeyAlreadyRunning)
	case errors.As(err, &selErr):
		return ui.text(KeyPleaseSelect)
	case errors.As(err, &destErr):
		return ui.text(KeyBadDestination) + ": " + destErr.Err.Error()
	}
	return err.Error()
}

// JobUpdated renders a progress snapshot. Called on the Fyne thread.
func (ui *RootUI) JobUpdated(job model.DownloadJob) {
	ui.progressBar.SetValue(job.Progress())
	ui.statusLabel.SetText(job.LastMessage)
	ui.detailLabel.SetText(job.Detail)
}

// JobFinished renders the terminal snapshot. Called on the Fyne thread.
func (ui *RootUI) JobFinished(job model.DownloadJob) {
	ui.setRunning(false)
	ui.progressBar.SetValue(job.Progress())
	ui.detailLabel.SetText(job.Detail)

	if job.State != model.JobSucceeded {
		ui.statusLabel.SetText(ui.text(KeyDownloadFailed))
		dialog.ShowError(errors.New(job.LastMessage), ui.window)
		return
	}

	ui.statusLabel.SetText(job.LastMessage)
	ui.lastOutput = job.OutputPath
	ui.revealBtn.Enable()
	dialog.ShowInformation(ui.text(KeyDownloadComplete),
		job.DisplayTitle()+"\n\n"+ui.text(KeyDownloadedTo)+"\n"+job.OutputPath, ui.window)

	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFile(job.OutputPath)
	}
}

// setRunning locks the controls that must not change while a job runs
func (ui *RootUI) setRunning(running bool) {
	if running {
		ui.downloadBtn.Disable()
		ui.searchBtn.Disable()
		ui.browseBtn.Disable()
		return
	}
	ui.searchBtn.Enable()
	ui.browseBtn.Enable()
	if len(ui.formatSelect.Options) > 0 {
		ui.downloadBtn.Enable()
	}
}

// onBrowseDirectory lets the user pick the destination folder
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.settings.SetDownloadDirectory(uri.Path())
		ui.folderLabel.SetText(uri.Path())
	}, ui.window)
}

// onRevealFile shows a downloaded file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showError(ui.text(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onToggleTheme switches between the light and dark variant
func (ui *RootUI) onToggleTheme() {
	variant := ui.settings.ToggleTheme()
	ui.app.Settings().SetTheme(NewCompactTheme(variant))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.folderLabel.SetText(ui.settings.GetDownloadDirectory())
		ui.onLanguageChange(ui.settings.GetLanguage())
	}).Show()
}

// handlePlaylistURL expands a playlist and lets the user pick one video
func (ui *RootUI) handlePlaylistURL(url string) {
	log.Printf("Processing playlist URL: %s", url)
	ui.statusLabel.SetText(ui.text(KeyParsingPlaylist))
	ui.searchBtn.Disable()

	go func() {
		playlist, err := ui.playlists.Expand(context.Background(), url)
		fyne.Do(func() {
			if !ui.downloads.Running() {
				ui.searchBtn.Enable()
			}
			if err != nil {
				log.Printf("Playlist parsing failed: %v", err)
				ui.statusLabel.SetText(ui.text(KeyParsingFailed) + ": " + err.Error())
				return
			}
			log.Printf("Playlist parsed: %s with %d videos", playlist.Title, len(playlist.Entries))
			ui.statusLabel.SetText(playlist.Title)
			ui.showPlaylistPicker(playlist)
		})
	}()
}

func (ui *RootUI) showPlaylistPicker(playlist *platform.Playlist) {
	var picker *dialog.CustomDialog
	list := widget.NewList(
		func() int { return len(playlist.Entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(playlist.Entries[id].Title)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		entry := playlist.Entries[id]
		picker.Hide()
		ui.urlEntry.SetText(entry.URL)
		if !ui.downloads.Running() {
			ui.search(entry.URL)
		}
	}

	picker = dialog.NewCustom(ui.text(KeyChooseVideo)+": "+playlist.Title, ui.text(KeyCancel), list, ui.window)
	picker.Resize(PlaylistDialogSize)
	picker.Show()
}

func (ui *RootUI) showError(message string) {
	dialog.ShowError(errors.New(message), ui.window)
}

// cleanInput strips control characters that sneak in with pasted URLs
func cleanInput(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}
