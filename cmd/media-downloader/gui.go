package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/media-downloader/internal/ui"
)

const AppID = "com.ytget.media-downloader"

// runGUI opens the main window and blocks until it is closed
func runGUI(env *environment) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	} else {
		env.logger.Warn("app icon not found", zap.String("path", ui.AppIcon), zap.Error(err))
	}

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	// Closing the window releases a paused worker and stops yt-dlp
	myWindow.SetOnClosed(cancel)

	ui.NewRootUI(ctx, myWindow, myApp, env.service, env.logger)

	myWindow.ShowAndRun()
	return nil
}
