package export

import (
	"fmt"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// pageGap is the spacing between page outlines in the DXF drawing, in
// drawing units.
const pageGap = 50.0

// ExportDXF writes the packed layout as a DXF drawing for CAD tools. Pages
// are laid out left to right with a gap between them; page outlines, sprite
// rectangles, and rotation markers go on separate layers so each can be
// toggled independently.
func ExportDXF(path string, result model.PackResult) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("no pages to export")
	}

	d := dxf.NewDrawing()
	d.AddLayer("PAGES", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.AddLayer("SPRITES", color.Green, table.LT_CONTINUOUS, false)
	d.AddLayer("ROTATED", color.Red, table.LT_CONTINUOUS, false)

	offsetX := 0.0
	for _, page := range result.Pages {
		d.ChangeLayer("PAGES")
		drawRect(d, offsetX, 0, float64(page.PageWidth), float64(page.PageHeight))

		for _, pl := range page.Placements {
			d.ChangeLayer("SPRITES")
			x := offsetX + float64(pl.X)
			y := float64(pl.Y)
			w := float64(pl.Width)
			h := float64(pl.Height)
			drawRect(d, x, y, w, h)

			// Rotated placements get a diagonal marker.
			if pl.Rotated {
				d.ChangeLayer("ROTATED")
				d.Line(x, y, 0, x+w, y+h, 0)
			}
		}

		offsetX += float64(page.PageWidth) + pageGap
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save DXF: %w", err)
	}
	return nil
}

// drawRect adds a closed polyline rectangle on the current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.LwPolyline(true,
		[]float64{x, y, 0},
		[]float64{x + w, y, 0},
		[]float64{x + w, y + h, 0},
		[]float64{x, y + h, 0},
	)
}
