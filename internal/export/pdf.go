// Package export writes packing results to external formats: a JSON atlas
// descriptor for runtimes, PDF layout reports, printable sprite labels, and
// DXF page drawings.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/atlaspack/internal/model"
)

// spriteColor represents an RGB color for a placed sprite.
type spriteColor struct {
	R, G, B int
}

var spriteColors = []spriteColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a packing result. Each atlas page
// is rendered on its own PDF page with a layout diagram, followed by a
// summary page with overall statistics.
func ExportPDF(path string, result model.PackResult, settings model.PackSettings) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("no pages to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, page := range result.Pages {
		pdf.AddPage()
		renderAtlasPage(pdf, page, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// renderAtlasPage draws a single atlas page layout on the current PDF page.
func renderAtlasPage(pdf *fpdf.Fpdf, page model.Page, pageNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Page %d: %d x %d px", pageNum, page.PageWidth, page.PageHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Sprites: %d | Used area: %d px² | Page area: %d px² | Occupancy: %.1f%%",
		len(page.Placements), page.UsedArea(), page.PageWidth*page.PageHeight, page.Occupancy*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the page to fit the drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / float64(page.PageWidth)
	scaleY := drawHeight / float64(page.PageHeight)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(page.PageWidth) * scale
	canvasH := float64(page.PageHeight) * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Page background
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Tight bounding box of the placements
	if page.Width < page.PageWidth || page.Height < page.PageHeight {
		pdf.SetDrawColor(150, 150, 150)
		pdf.SetLineWidth(0.2)
		pdf.Rect(offsetX, offsetY, float64(page.Width)*scale, float64(page.Height)*scale, "D")
	}

	// Placed sprites
	for i, pl := range page.Placements {
		col := spriteColors[i%len(spriteColors)]
		pw := float64(pl.Width) * scale
		ph := float64(pl.Height) * scale
		px := offsetX + float64(pl.X)*scale
		py := offsetY + float64(pl.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Sprite label (only if the rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := pl.Sprite.Name
			if pl.Rotated {
				label += " (R)"
			}
			dims := fmt.Sprintf("%dx%d", pl.Sprite.Width, pl.Sprite.Height)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, page, scale, offsetX, offsetY, canvasW, canvasH)
	drawSpriteLegend(pdf, page, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the page rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, page model.Page, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the page)
	widthLabel := fmt.Sprintf("%d px", page.PageWidth)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the page, rotated)
	heightLabel := fmt.Sprintf("%d px", page.PageHeight)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawSpriteLegend renders a compact legend of placed sprites below the diagram.
func drawSpriteLegend(pdf *fpdf.Fpdf, page model.Page, startY float64) {
	if len(page.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Sprites placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, pl := range page.Placements {
		col := spriteColors[i%len(spriteColors)]
		label := fmt.Sprintf("%s (%dx%d)", pl.Sprite.Name, pl.Sprite.Width, pl.Sprite.Height)
		if pl.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, settings model.PackSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Atlas Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Total Pages", fmt.Sprintf("%d", len(result.Pages))},
		{"Total Sprites Placed", fmt.Sprintf("%d", result.SpriteCount())},
		{"Average Occupancy", fmt.Sprintf("%.1f%%", result.AverageOccupancy()*100)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-page breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Page Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 50, 50, 35, 60}
	headers := []string{"Page", "Page Size", "Used Size", "Sprites", "Occupancy"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, page := range result.Pages {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d x %d px", page.PageWidth, page.PageHeight),
			fmt.Sprintf("%d x %d px", page.Width, page.Height),
			fmt.Sprintf("%d", len(page.Placements)),
			fmt.Sprintf("%.1f%%", page.Occupancy*100),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Pack settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pack Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Page Width", fmt.Sprintf("%d - %d px", settings.MinWidth, settings.MaxWidth)},
		{"Page Height", fmt.Sprintf("%d - %d px", settings.MinHeight, settings.MaxHeight)},
		{"Padding", fmt.Sprintf("%d x %d px", settings.PaddingX, settings.PaddingY)},
		{"Power of Two", fmt.Sprintf("%t", settings.PowerOfTwo)},
		{"Rotation", fmt.Sprintf("%t", settings.Rotation)},
		{"Fast Mode", fmt.Sprintf("%t", settings.Fast)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by AtlasPack - Texture Atlas Packer", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
