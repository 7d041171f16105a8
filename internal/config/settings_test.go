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

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}
	if stored := app.Preferences().String(KeyDownloadDir); stored != dir {
		t.Errorf("Default should be persisted, got %q", stored)
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetBackend(); got != DefaultBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultBackend, got)
	}

	settings.SetBackend(BackendNative)
	if got := settings.GetBackend(); got != BackendNative {
		t.Errorf("Expected backend %s, got %s", BackendNative, got)
	}

	settings.SetBackend("bogus")
	if got := settings.GetBackend(); got != DefaultBackend {
		t.Errorf("Unknown backend should fall back to %s, got %s", DefaultBackend, got)
	}

	// a corrupted stored value is repaired on read
	app.Preferences().SetString(KeyBackend, "corrupted")
	if got := settings.GetBackend(); got != DefaultBackend {
		t.Errorf("Corrupted backend should read as %s, got %s", DefaultBackend, got)
	}
	if stored := app.Preferences().String(KeyBackend); stored != string(DefaultBackend) {
		t.Errorf("Corrupted backend should be rewritten, got %q", stored)
	}
}

func TestYtDlpPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetYtDlpPath(); got != DefaultYtDlpPath {
		t.Errorf("Expected default path %s, got %s", DefaultYtDlpPath, got)
	}

	settings.SetYtDlpPath("/opt/bin/yt-dlp")
	if got := settings.GetYtDlpPath(); got != "/opt/bin/yt-dlp" {
		t.Errorf("Expected custom path, got %s", got)
	}

	settings.SetYtDlpPath("")
	if got := settings.GetYtDlpPath(); got != DefaultYtDlpPath {
		t.Errorf("Empty path should default to %s, got %s", DefaultYtDlpPath, got)
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetTheme(); got != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, got)
	}

	if got := settings.ToggleTheme(); got != ThemeDark {
		t.Errorf("Toggle from light should give dark, got %s", got)
	}
	if got := settings.GetTheme(); got != ThemeDark {
		t.Errorf("Toggled theme not persisted, got %s", got)
	}
	if got := settings.ToggleTheme(); got != ThemeLight {
		t.Errorf("Toggle from dark should give light, got %s", got)
	}

	settings.SetTheme("sepia")
	if got := settings.GetTheme(); got != ThemeLight {
		t.Errorf("Unknown theme should be stored as light, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestGetBackendOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())

	options := settings.GetBackendOptions()
	if len(options) != 2 || options[0] != BackendYtDlp || options[1] != BackendNative {
		t.Errorf("Unexpected backend options: %v", options)
	}
	for _, option := range options {
		if !option.Valid() {
			t.Errorf("Option %s should be valid", option)
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
