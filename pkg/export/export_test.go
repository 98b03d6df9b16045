package export

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsebastien/week-planner/pkg/models"
)

func samplePlan() models.PlannerData {
	return models.PlannerData{
		Config: models.GridConfig{
			Days:            7,
			Rows:            20,
			CellWidth:       120,
			CellHeight:      28,
			OriginX:         56,
			OriginY:         28,
			DayStartMinutes: 8 * 60,
			SlotMinutes:     30,
		},
		Blocks: []models.TimeBlock{
			{ID: "a", Day: 0, Start: 2, End: 4, Label: "Standup & sync", Color: "#4285f4"},
			{ID: "b", Day: 2, Start: 6, End: 10, Label: "Deep work", Color: "#0f9d58"},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	plan := samplePlan()

	raw, err := JSON(plan)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), "\n"))

	got, err := ParseJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, plan, got)
}

func TestJSONOmitsPixelBounds(t *testing.T) {
	plan := samplePlan()
	plan.Blocks[0].Bounds = models.Rect{X: 1, Y: 2, Width: 3, Height: 4}

	raw, err := JSON(plan)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bounds", "bounds are derived, never serialized")

	got, err := ParseJSON(raw)
	require.NoError(t, err)
	assert.Zero(t, got.Blocks[0].Bounds)
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestSVG(t *testing.T) {
	doc := SVG(samplePlan())

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0"`))
	assert.Contains(t, doc, `xmlns="http://www.w3.org/2000/svg"`)
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))

	// Headers, gutter labels, and both blocks.
	assert.Contains(t, doc, ">Mon</text>")
	assert.Contains(t, doc, ">Wed</text>")
	assert.Contains(t, doc, ">08:00</text>")
	assert.Contains(t, doc, ">18:00</text>")
	assert.Contains(t, doc, `fill="#4285f4"`)
	assert.Contains(t, doc, `fill="#0f9d58"`)
	assert.Contains(t, doc, ">Deep work</text>")

	// Labels are escaped, not emitted raw.
	assert.Contains(t, doc, "Standup &amp; sync")
	assert.NotContains(t, doc, "Standup & sync")
}

func TestSVGEmptyPlan(t *testing.T) {
	plan := samplePlan()
	plan.Blocks = nil

	doc := SVG(plan)
	assert.Contains(t, doc, "</svg>")
	assert.NotContains(t, doc, "rx=", "no block rects without blocks")
}

func TestPNG(t *testing.T) {
	rect := canvas.NewRectangle(color.NRGBA{R: 0x42, G: 0x85, B: 0xf4, A: 0xff})
	rect.SetMinSize(fyne.NewSize(40, 20))

	raw, err := PNG(rect, theme.DefaultTheme())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.False(t, img.Bounds().Empty())
}

func TestICal(t *testing.T) {
	// Monday 2026-01-05.
	weekStart := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	raw, err := ICal(samplePlan(), weekStart)
	require.NoError(t, err)
	doc := string(raw)

	assert.Contains(t, doc, "BEGIN:VCALENDAR")
	assert.Contains(t, doc, "END:VCALENDAR")
	assert.Equal(t, 2, strings.Count(doc, "BEGIN:VEVENT"))
	assert.Contains(t, doc, "SUMMARY:Standup & sync")
	assert.Contains(t, doc, "UID:a")

	// Day 0 slot 2 on a 08:00 axis with 30-minute slots is Monday 09:00.
	assert.Contains(t, doc, "DTSTART:20260105T090000")
	assert.Contains(t, doc, "DTEND:20260105T100000")
	// Day 2 slots [6, 10) is Wednesday 11:00-13:00.
	assert.Contains(t, doc, "DTSTART:20260107T110000")
	assert.Contains(t, doc, "DTEND:20260107T130000")
}
