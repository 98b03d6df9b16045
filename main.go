package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dsebastien/week-planner/pkg/store"
)

type WeekPlanner struct {
	app            fyne.App
	config         *Config
	store          *store.BlockStore
	plannerWindow  *PlannerWindow
	settingsWindow *SettingsWindow
}

func main() {
	wp := &WeekPlanner{
		app: app.NewWithID("com.dsebastien.week-planner"),
	}

	if err := wp.initialize(); err != nil {
		log.Fatal(err)
	}

	wp.run()
}

func (wp *WeekPlanner) initialize() error {
	wp.config = loadConfig(wp.app)

	// Sync autostart state with config on startup
	if err := setupAutostart(wp.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(wp.app, wp.config)

	st, err := store.NewBlockStore(wp.config.GridConfig())
	if err != nil {
		return err
	}
	wp.store = st

	wp.plannerWindow = NewPlannerWindow(wp.app, wp.config, wp.store, wp.showSettingsWindow)
	return nil
}

func (wp *WeekPlanner) run() {
	wp.plannerWindow.ShowAndRun()
}

func (wp *WeekPlanner) showSettingsWindow() {
	// If the settings window already exists and is showing, just bring it
	// to front
	if wp.settingsWindow != nil && wp.settingsWindow.window != nil {
		wp.settingsWindow.window.RequestFocus()
		wp.settingsWindow.window.Show()
		return
	}

	wp.settingsWindow = NewSettingsWindow(wp.app, wp.config, func(newConfig *Config) {
		wp.config = newConfig
		saveConfig(wp.app, wp.config)

		if err := wp.store.UpdateConfig(wp.config.GridConfig()); err != nil {
			log.Printf("Error applying grid settings: %v", err)
			return
		}
		wp.plannerWindow.ApplyConfig(wp.config)
	})

	wp.settingsWindow.window.SetOnClosed(func() {
		wp.settingsWindow = nil
	})

	wp.settingsWindow.Show()
}
