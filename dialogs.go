package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/dsebastien/week-planner/pkg/export"
	"github.com/dsebastien/week-planner/pkg/ui/components"
)

func (pw *PlannerWindow) exportJSON() {
	pw.saveToFile("week-plan.json", []string{".json"}, func() ([]byte, error) {
		return export.JSON(pw.store.ExportData())
	})
}

func (pw *PlannerWindow) exportSVG() {
	pw.saveToFile("week-plan.svg", []string{".svg"}, func() ([]byte, error) {
		return []byte(export.SVG(pw.store.ExportData())), nil
	})
}

func (pw *PlannerWindow) exportPNG() {
	// Render a fresh off-screen grid so the on-screen widget's layout is
	// not disturbed by the software renderer.
	snapshot := components.NewPlannerGrid(pw.store)
	th := pw.app.Settings().Theme()
	pw.saveToFile("week-plan.png", []string{".png"}, func() ([]byte, error) {
		return export.PNG(snapshot, th)
	})
}

func (pw *PlannerWindow) exportICal() {
	pw.saveToFile("week-plan.ics", []string{".ics"}, func() ([]byte, error) {
		return export.ICal(pw.store.ExportData(), startOfWeek(time.Now()))
	})
}

func (pw *PlannerWindow) saveToFile(name string, exts []string, build func() ([]byte, error)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		data, err := build()
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		log.Printf("Exported %s", writer.URI())
	}, pw.window)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.Show()
}

// importPlan loads a JSON snapshot. The store applies it atomically: an
// invalid snapshot is rejected whole and the current plan stays as it was.
func (pw *PlannerWindow) importPlan() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		raw, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		data, err := export.ParseJSON(raw)
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if err := pw.store.ImportData(data); err != nil {
			dialog.ShowError(fmt.Errorf("import aborted, plan unchanged: %w", err), pw.window)
			return
		}

		log.Printf("Imported %d blocks from %s", pw.store.Len(), reader.URI())

		// The snapshot carries its own cell geometry; refit to this window.
		pw.resizeMu.Lock()
		size := pw.areaSize
		pw.resizeMu.Unlock()
		if size.Width > 0 && size.Height > 0 {
			pw.fitGrid(size)
		} else {
			pw.grid.Refresh()
			pw.refreshStatus()
		}
	}, pw.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (pw *PlannerWindow) confirmClearAll() {
	count := pw.store.Len()
	if count == 0 {
		return
	}

	dialog.ShowConfirm("Clear All",
		fmt.Sprintf("Remove all %d blocks from the plan?", count),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			pw.store.ClearAll()
			pw.grid.Refresh()
			pw.refreshStatus()
		}, pw.window)
}

// startOfWeek returns midnight of the Monday of t's week, the date that day
// column 0 maps to in calendar export.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
