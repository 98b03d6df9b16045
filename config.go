package main

import (
	"fyne.io/fyne/v2"

	"github.com/dsebastien/week-planner/pkg/models"
)

// Header geometry around the grid cells: a gutter for time labels on the
// left and a band for day names on top.
const (
	timeGutterWidth float32 = 56
	dayHeaderHeight float32 = 28
	minCellWidth    float32 = 40
	minCellHeight   float32 = 16

	defaultCellWidth  = 120.0
	defaultCellHeight = 28.0
)

type Config struct {
	Days            int
	Rows            int
	DayStartMinutes int
	SlotMinutes     int
	CellWidth       float64
	CellHeight      float64
	AutoStart       bool
	DefaultColor    string
	DefaultLabel    string
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		Days:            prefs.IntWithFallback("days", 7),
		Rows:            prefs.IntWithFallback("rows", 20),
		DayStartMinutes: prefs.IntWithFallback("day_start_minutes", 8*60),
		SlotMinutes:     prefs.IntWithFallback("slot_minutes", 30),
		CellWidth:       prefs.FloatWithFallback("cell_width", defaultCellWidth),
		CellHeight:      prefs.FloatWithFallback("cell_height", defaultCellHeight),
		AutoStart:       prefs.BoolWithFallback("auto_start", false),
		DefaultColor:    prefs.StringWithFallback("default_color", "#4285f4"),
		DefaultLabel:    prefs.StringWithFallback("default_label", "New block"),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetInt("days", config.Days)
	prefs.SetInt("rows", config.Rows)
	prefs.SetInt("day_start_minutes", config.DayStartMinutes)
	prefs.SetInt("slot_minutes", config.SlotMinutes)
	prefs.SetFloat("cell_width", config.CellWidth)
	prefs.SetFloat("cell_height", config.CellHeight)
	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetString("default_color", config.DefaultColor)
	prefs.SetString("default_label", config.DefaultLabel)
}

// GridConfig converts the app settings to the geometric grid configuration
// used by the store. Cell sizes here are the configured baseline; the main
// window overrides them to fill the available canvas on resize.
func (c *Config) GridConfig() models.GridConfig {
	return models.GridConfig{
		Days:            c.Days,
		Rows:            c.Rows,
		CellWidth:       float32(c.CellWidth),
		CellHeight:      float32(c.CellHeight),
		OriginX:         timeGutterWidth,
		OriginY:         dayHeaderHeight,
		DayStartMinutes: c.DayStartMinutes,
		SlotMinutes:     c.SlotMinutes,
	}
}
