package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/dsebastien/week-planner/pkg/models"
)

// ICal renders the week plan as an iCalendar document. Day columns map onto
// concrete dates starting at weekStart (day 0), with each block's slot range
// converted to wall-clock times on the grid's time axis.
func ICal(data models.PlannerData, weekStart time.Time) ([]byte, error) {
	cfg := data.Config

	// Anchor at midnight so slot offsets are exact.
	base := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//week-planner//EN")

	now := time.Now()
	for _, b := range data.Blocks {
		day := base.AddDate(0, 0, b.Day)
		start := day.Add(time.Duration(cfg.DayStartMinutes+b.Start*cfg.SlotMinutes) * time.Minute)
		end := day.Add(time.Duration(cfg.DayStartMinutes+b.End*cfg.SlotMinutes) * time.Minute)

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, b.ID)
		event.Props.SetText(ical.PropSummary, b.Label)
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encoding calendar: %w", err)
	}
	return buf.Bytes(), nil
}
