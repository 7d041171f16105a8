package ui

import "fyne.io/fyne/v2"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Layout sizing
var (
	ThumbnailMinSize   = fyne.NewSize(320, 180)
	PlaylistDialogSize = fyne.NewSize(480, 360)
	SettingsDialogSize = fyne.NewSize(500, 380)
)
