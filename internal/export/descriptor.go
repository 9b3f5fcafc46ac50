package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/atlaspack/internal/model"
)

// Frame describes one sprite's pixel region on a page. Width and Height are
// the on-page dimensions after rotation, with the packing padding already
// subtracted, so a runtime can sample the region directly.
type Frame struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Rotated bool   `json:"rotated"`
}

// PageDescriptor describes one atlas page and its frames.
type PageDescriptor struct {
	Image     string  `json:"image"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Occupancy float64 `json:"occupancy"`
	Frames    []Frame `json:"frames"`
}

// Descriptor is the full JSON atlas descriptor consumed by runtimes.
type Descriptor struct {
	Pages    []PageDescriptor   `json:"pages"`
	Settings model.PackSettings `json:"settings"`
}

// BuildDescriptor converts a packing result into a descriptor. Page images
// are referenced as <base>-<page>.png, matching the compositor's naming.
func BuildDescriptor(result model.PackResult, settings model.PackSettings, base string) Descriptor {
	d := Descriptor{
		Pages:    make([]PageDescriptor, 0, len(result.Pages)),
		Settings: settings,
	}
	for i, page := range result.Pages {
		pd := PageDescriptor{
			Image:     fmt.Sprintf("%s-%d.png", base, i),
			Width:     page.PageWidth,
			Height:    page.PageHeight,
			Occupancy: page.Occupancy,
			Frames:    make([]Frame, 0, len(page.Placements)),
		}
		for _, pl := range page.Placements {
			pd.Frames = append(pd.Frames, Frame{
				Name:    pl.Sprite.Name,
				ID:      pl.Sprite.ID,
				X:       pl.X,
				Y:       pl.Y,
				Width:   pl.Width - settings.PaddingX,
				Height:  pl.Height - settings.PaddingY,
				Rotated: pl.Rotated,
			})
		}
		d.Pages = append(d.Pages, pd)
	}
	return d
}

// ExportDescriptor writes the descriptor as indented JSON.
func ExportDescriptor(path string, result model.PackResult, settings model.PackSettings, base string) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("no pages to export")
	}

	d := BuildDescriptor(result, settings, base)
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write descriptor: %w", err)
	}
	return nil
}

// LoadDescriptor reads a descriptor back from disk.
func LoadDescriptor(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("cannot read descriptor: %w", err)
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("cannot parse descriptor: %w", err)
	}
	return d, nil
}
