package export

import (
	"fmt"
	"strings"

	"github.com/dsebastien/week-planner/pkg/models"
)

const (
	svgGridColor   = "#d0d0d0"
	svgHeaderColor = "#333333"
	svgLabelColor  = "#ffffff"
	svgFontFamily  = "Arial, sans-serif"
)

// SVG renders the week grid and its blocks as a standalone SVG document.
func SVG(data models.PlannerData) string {
	cfg := data.Config

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, cfg.Width(), cfg.Height()))

	// Column and row grid lines
	for d := 0; d <= cfg.Days; d++ {
		x := cfg.OriginX + float32(d)*cfg.CellWidth
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			x, cfg.OriginY, x, cfg.Height(), svgGridColor))
	}
	for r := 0; r <= cfg.Rows; r++ {
		y := cfg.OriginY + float32(r)*cfg.CellHeight
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			cfg.OriginX, y, cfg.Width(), y, svgGridColor))
	}

	// Day headers and time gutter
	for d := 0; d < cfg.Days; d++ {
		x := cfg.OriginX + (float32(d)+0.5)*cfg.CellWidth
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="12" fill="%s">%s</text>`+"\n",
			x, cfg.OriginY-6, svgFontFamily, svgHeaderColor, xmlEscape(cfg.DayName(d))))
	}
	for r := 0; r <= cfg.Rows; r++ {
		y := cfg.OriginY + float32(r)*cfg.CellHeight
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end" font-family="%s" font-size="10" fill="%s">%s</text>`+"\n",
			cfg.OriginX-4, y+3, svgFontFamily, svgHeaderColor, cfg.SlotToTime(r)))
	}

	// Blocks in insertion order so stacking matches the canvas
	for _, b := range data.Blocks {
		bounds := cfg.BlockBounds(b.Day, b.Start, b.End)
		svg.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			bounds.X+1, bounds.Y+1, bounds.Width-2, bounds.Height-2, b.Color, svgHeaderColor))
		if b.Label != "" {
			svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="%s" font-size="11" fill="%s">%s</text>`+"\n",
				bounds.X+6, bounds.Y+15, svgFontFamily, svgLabelColor, xmlEscape(b.Label)))
		}
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
