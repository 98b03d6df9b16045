package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type SettingsWindow struct {
	window fyne.Window
	app    fyne.App
	config *Config
	onSave func(*Config)

	// General tab
	autoStartCheck    *widget.Check
	defaultColorEntry *widget.Entry
	defaultLabelEntry *widget.Entry

	// Grid tab
	daysSelect     *widget.Select
	dayStartSelect *widget.Select
	dayEndSelect   *widget.Select
	slotSelect     *widget.Select

	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

func NewSettingsWindow(app fyne.App, config *Config, onSave func(*Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:    app,
		config: config,
		onSave: onSave,
	}

	sw.window = app.NewWindow("Week Planner - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", sw.buildGeneralTab()),
		container.NewTabItem("Grid", sw.buildGridTab()),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance

	bottom := container.NewBorder(nil, nil, sw.saveStatusLabel, sw.saveButton)
	sw.window.SetContent(container.NewBorder(nil, container.NewPadded(bottom), nil, nil, tabs))
	sw.window.Resize(fyne.NewSize(480, 420))
}

func (sw *SettingsWindow) buildGeneralTab() fyne.CanvasObject {
	sw.autoStartCheck = widget.NewCheck("Auto Start on System Boot", nil)
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	sw.defaultColorEntry = widget.NewEntry()
	sw.defaultColorEntry.SetText(sw.config.DefaultColor)
	sw.defaultColorEntry.SetPlaceHolder("#4285f4")

	sw.defaultLabelEntry = widget.NewEntry()
	sw.defaultLabelEntry.SetText(sw.config.DefaultLabel)

	colorHelp := widget.NewLabel("Fill color for newly created blocks, as #rrggbb")
	colorHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Auto Start:"),
		sw.autoStartCheck,

		container.NewVBox(widget.NewLabel("Block Color:"), colorHelp),
		sw.defaultColorEntry,

		widget.NewLabel("Block Label:"),
		sw.defaultLabelEntry,
	)

	content := container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (sw *SettingsWindow) buildGridTab() fyne.CanvasObject {
	sw.daysSelect = widget.NewSelect([]string{"5", "6", "7"}, nil)
	sw.daysSelect.SetSelected(strconv.Itoa(sw.config.Days))

	hours := make([]string, 25)
	for h := 0; h <= 24; h++ {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}
	sw.dayStartSelect = widget.NewSelect(hours[:24], nil)
	sw.dayStartSelect.SetSelected(fmt.Sprintf("%02d:00", sw.config.DayStartMinutes/60))

	endMinutes := sw.config.DayStartMinutes + sw.config.Rows*sw.config.SlotMinutes
	sw.dayEndSelect = widget.NewSelect(hours[1:], nil)
	sw.dayEndSelect.SetSelected(fmt.Sprintf("%02d:00", endMinutes/60))

	sw.slotSelect = widget.NewSelect([]string{"15", "30", "60"}, nil)
	sw.slotSelect.SetSelected(strconv.Itoa(sw.config.SlotMinutes))

	gridHelp := widget.NewLabel("Blocks keep their day and time slots when the grid changes; only the drawing geometry is recomputed.")
	gridHelp.Wrapping = fyne.TextWrapWord
	gridHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Days per Week:"), sw.daysSelect,
		widget.NewLabel("Day Starts:"), sw.dayStartSelect,
		widget.NewLabel("Day Ends:"), sw.dayEndSelect,
		widget.NewLabel("Slot Minutes:"), sw.slotSelect,
	)

	content := container.NewVBox(
		widget.NewLabel("Grid Settings"),
		widget.NewSeparator(),
		form,
		gridHelp,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (sw *SettingsWindow) save() {
	newConfig, err := sw.configFromUI()
	if err != nil {
		dialog.ShowError(err, sw.window)
		return
	}
	if err := newConfig.GridConfig().Validate(); err != nil {
		dialog.ShowError(err, sw.window)
		return
	}

	sw.saveButton.Disable()
	sw.saveStatusLabel.SetText("Saving...")
	sw.saveStatusLabel.Importance = widget.MediumImportance
	sw.saveStatusLabel.Refresh()

	go func() {
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			fyne.Do(func() {
				sw.saveStatusLabel.SetText("Error: failed to set autostart")
				sw.saveStatusLabel.Importance = widget.DangerImportance
				sw.saveStatusLabel.Refresh()
				sw.saveButton.Enable()
			})
			return
		}

		fyne.Do(func() {
			if sw.onSave != nil {
				sw.onSave(newConfig)
			}
			sw.config = newConfig

			sw.saveStatusLabel.SetText("Settings saved")
			sw.saveStatusLabel.Importance = widget.SuccessImportance
			sw.saveStatusLabel.Refresh()
			sw.saveButton.Enable()

			// Clear success message after 3 seconds
			go func() {
				time.Sleep(3 * time.Second)
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == "Settings saved" {
						sw.saveStatusLabel.SetText("")
						sw.saveStatusLabel.Refresh()
					}
				})
			}()
		})
	}()
}

func (sw *SettingsWindow) configFromUI() (*Config, error) {
	days, err := strconv.Atoi(sw.daysSelect.Selected)
	if err != nil {
		return nil, fmt.Errorf("invalid day count %q", sw.daysSelect.Selected)
	}
	slotMinutes, err := strconv.Atoi(sw.slotSelect.Selected)
	if err != nil {
		return nil, fmt.Errorf("invalid slot duration %q", sw.slotSelect.Selected)
	}

	startHour, err := parseHourSelection(sw.dayStartSelect.Selected)
	if err != nil {
		return nil, err
	}
	endHour, err := parseHourSelection(sw.dayEndSelect.Selected)
	if err != nil {
		return nil, err
	}
	if endHour <= startHour {
		return nil, fmt.Errorf("day must end after it starts (%02d:00 to %02d:00)", startHour, endHour)
	}

	color := sw.defaultColorEntry.Text
	if len(color) != 7 || color[0] != '#' {
		return nil, fmt.Errorf("block color must be #rrggbb, got %q", color)
	}

	cfg := *sw.config
	cfg.Days = days
	cfg.DayStartMinutes = startHour * 60
	cfg.SlotMinutes = slotMinutes
	cfg.Rows = (endHour - startHour) * 60 / slotMinutes
	cfg.AutoStart = sw.autoStartCheck.Checked
	cfg.DefaultColor = color
	cfg.DefaultLabel = sw.defaultLabelEntry.Text
	return &cfg, nil
}

func parseHourSelection(s string) (int, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid hour %q", s)
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q: %w", s, err)
	}
	return hour, nil
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}
