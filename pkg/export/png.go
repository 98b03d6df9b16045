package export

import (
	"bytes"
	"fmt"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
)

// PNG rasterizes a canvas object with Fyne's software renderer and encodes
// it as PNG. The object is rendered at its minimum size, which for the
// planner grid is the full grid geometry.
func PNG(obj fyne.CanvasObject, th fyne.Theme) ([]byte, error) {
	img := software.Render(obj, th)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
