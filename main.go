package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/tripwise/internal/api"
	"github.com/ytget/tripwise/internal/config"
	"github.com/ytget/tripwise/internal/places"
	"github.com/ytget/tripwise/internal/planner"
	"github.com/ytget/tripwise/internal/platform"
	"github.com/ytget/tripwise/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.tripwise"
	AppName = "TripWise"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LoadLogoResource())

	// Apply the TripWise theme
	myApp.Settings().SetTheme(ui.NewTripTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	settings.ApplyEnv(config.LoadEnv())

	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		log.Printf("failed to ensure export dir: %v", err)
	}

	catalog, err := places.LoadDefault()
	if err != nil {
		log.Fatalf("failed to load destinations: %v", err)
	}
	log.Printf("Loaded %d destinations", catalog.Len())

	client := api.NewClient(settings.GetAPIBaseURL(),
		api.WithTimeouts(settings.GetConnectTimeout(), settings.GetRequestTimeout()),
	)
	controller := planner.NewController(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, client, settings, catalog)

	// Show and run
	myWindow.ShowAndRun()
}
