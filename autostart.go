package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

// setupAutostart syncs the login-item registration with the desired state.
// Callers decide how to surface failures: startup logs a warning and carries
// on, the settings window reports in its status label.
func setupAutostart(enable bool) error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	app := &autostart.App{
		Name:        "week-planner",
		DisplayName: "Week Planner",
		Exec:        []string{execPath},
	}

	if enable == app.IsEnabled() {
		return nil
	}
	if enable {
		return app.Enable()
	}
	return app.Disable()
}
