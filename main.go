package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/platform"
	"github.com/ytget/ytpick/internal/resolver"
	"github.com/ytget/ytpick/internal/resolver/backend"
	"github.com/ytget/ytpick/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytpick"
	AppName = "ytpick"

	WindowWidth  = 800
	WindowHeight = 560
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetTheme()))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	mediaResolver, err := backend.New(string(settings.GetBackend()), settings.GetYtDlpPath())
	if err != nil {
		log.Printf("%v, falling back to %s", err, config.DefaultBackend)
		mediaResolver, _ = backend.New(string(config.DefaultBackend), settings.GetYtDlpPath())
	}
	if err := backend.Check(context.Background(), mediaResolver); err != nil {
		log.Printf("%s", resolver.FriendlyMessage(err))
	}

	ui.NewRootUI(myWindow, myApp, settings, mediaResolver)

	myWindow.ShowAndRun()
}
