package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytpick/internal/platform"
)

// Backend selects the media resolver implementation
type Backend string

const (
	BackendYtDlp  Backend = "ytdlp"
	BackendNative Backend = "native"
)

// ThemeVariant is the persisted light/dark choice
type ThemeVariant string

const (
	ThemeLight ThemeVariant = "light"
	ThemeDark  ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyBackend            = "resolver_backend"
	KeyYtDlpPath          = "ytdlp_path"
	KeyTheme              = "theme_variant"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultBackend            = BackendYtDlp
	DefaultYtDlpPath          = "yt-dlp"
	DefaultTheme              = ThemeLight
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	fallbackDownloadDirName   = "downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory, defaulting
// to the user's Downloads folder
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), fallbackDownloadDirName)
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetBackend returns the configured resolver backend
func (s *Settings) GetBackend() Backend {
	backend := Backend(s.app.Preferences().String(KeyBackend))
	if !backend.Valid() {
		s.SetBackend(DefaultBackend)
		return DefaultBackend
	}
	return backend
}

// SetBackend sets the resolver backend; unknown values fall back to the default
func (s *Settings) SetBackend(backend Backend) {
	if !backend.Valid() {
		backend = DefaultBackend
	}
	s.app.Preferences().SetString(KeyBackend, string(backend))
}

// Valid reports whether b names a known backend
func (b Backend) Valid() bool {
	return b == BackendYtDlp || b == BackendNative
}

// GetYtDlpPath returns the yt-dlp executable used by the subprocess backend
func (s *Settings) GetYtDlpPath() string {
	path := s.app.Preferences().String(KeyYtDlpPath)
	if path == "" {
		s.SetYtDlpPath(DefaultYtDlpPath)
		return DefaultYtDlpPath
	}
	return path
}

// SetYtDlpPath sets the yt-dlp executable path
func (s *Settings) SetYtDlpPath(path string) {
	if path == "" {
		path = DefaultYtDlpPath
	}
	s.app.Preferences().SetString(KeyYtDlpPath, path)
}

// GetTheme returns the persisted theme variant
func (s *Settings) GetTheme() ThemeVariant {
	switch variant := ThemeVariant(s.app.Preferences().String(KeyTheme)); variant {
	case ThemeLight, ThemeDark:
		return variant
	}
	s.SetTheme(DefaultTheme)
	return DefaultTheme
}

// SetTheme sets the theme variant
func (s *Settings) SetTheme(variant ThemeVariant) {
	if variant != ThemeDark {
		variant = ThemeLight
	}
	s.app.Preferences().SetString(KeyTheme, string(variant))
}

// ToggleTheme flips between light and dark and returns the new variant
func (s *Settings) ToggleTheme() ThemeVariant {
	next := ThemeDark
	if s.GetTheme() == ThemeDark {
		next = ThemeLight
	}
	s.SetTheme(next)
	return next
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

// GetAutoRevealOnComplete returns whether to open the folder of a finished download
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the folder of a finished download
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetBackendOptions returns the selectable backends
func (s *Settings) GetBackendOptions() []Backend {
	return []Backend{BackendYtDlp, BackendNative}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
