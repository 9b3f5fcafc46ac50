package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Sprite represents a rectangular image to be packed into an atlas page.
// Width and Height are the raw source dimensions in pixels; the packer
// inflates them by the configured padding while placing.
type Sprite struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Width     int    `json:"width"`            // px
	Height    int    `json:"height"`           // px
	CanRotate bool   `json:"can_rotate"`       // May be rotated 90° when the settings allow rotation
	Source    string `json:"source,omitempty"` // Path to the source image, when imported from disk
}

func NewSprite(name string, w, h int) Sprite {
	return Sprite{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Height:    h,
		CanRotate: true,
	}
}

// Area returns the sprite's raw pixel area.
func (s Sprite) Area() int {
	return s.Width * s.Height
}

// PackSettings holds the page-size search and placement configuration.
// It is validated once at packer construction and never mutated afterwards.
type PackSettings struct {
	MinWidth   int  `json:"min_width"`    // Smallest candidate page width (px)
	MaxWidth   int  `json:"max_width"`    // Largest candidate page width (px)
	MinHeight  int  `json:"min_height"`   // Smallest candidate page height (px)
	MaxHeight  int  `json:"max_height"`   // Largest candidate page height (px)
	PaddingX   int  `json:"padding_x"`    // Horizontal padding added around each sprite (px)
	PaddingY   int  `json:"padding_y"`    // Vertical padding added around each sprite (px)
	PowerOfTwo bool `json:"power_of_two"` // Restrict candidate page sizes to powers of two
	Fast       bool `json:"fast"`         // Pre-sort and insert in order instead of full batch re-evaluation
	Rotation   bool `json:"rotation"`     // Allow 90° rotation for sprites that permit it
}

// DefaultPackSettings returns settings suitable for typical GPU texture atlases.
func DefaultPackSettings() PackSettings {
	return PackSettings{
		MinWidth:   16,
		MaxWidth:   1024,
		MinHeight:  16,
		MaxHeight:  1024,
		PaddingX:   2,
		PaddingY:   2,
		PowerOfTwo: true,
		Fast:       false,
		Rotation:   false,
	}
}

// Validate checks the min/max constraints on both axes. In power-of-two
// mode the maximum sizes must themselves be powers of two, otherwise the
// size search could settle on a page above the configured limit.
func (s PackSettings) Validate() error {
	if s.MinWidth > s.MaxWidth {
		return fmt.Errorf("page min width %d cannot be higher than max width %d", s.MinWidth, s.MaxWidth)
	}
	if s.MinHeight > s.MaxHeight {
		return fmt.Errorf("page min height %d cannot be higher than max height %d", s.MinHeight, s.MaxHeight)
	}
	if s.PowerOfTwo {
		if !isPowerOfTwo(s.MaxWidth) {
			return fmt.Errorf("power-of-two mode needs a power-of-two max width, got %d", s.MaxWidth)
		}
		if !isPowerOfTwo(s.MaxHeight) {
			return fmt.Errorf("power-of-two mode needs a power-of-two max height, got %d", s.MaxHeight)
		}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Placement represents a single sprite fixed onto an atlas page.
// Width and Height are the padded dimensions after any rotation, so a
// rotated placement of a 10x4 sprite with no padding stores 4x10.
type Placement struct {
	Sprite  Sprite `json:"sprite"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Rotated bool   `json:"rotated"`
}

// Right returns the x coordinate just past the placement's right edge.
func (p Placement) Right() int {
	return p.X + p.Width
}

// Bottom returns the y coordinate just past the placement's bottom edge.
func (p Placement) Bottom() int {
	return p.Y + p.Height
}

// Page is one packed atlas page.
//
// Width and Height are the tight bounding box of the placements, which is
// what a compositor should allocate. PageWidth and PageHeight are the
// candidate page size the search settled on; occupancy is measured against
// that candidate area so trials at different sizes stay comparable, and in
// power-of-two mode the candidate size is what carries the POT guarantee.
type Page struct {
	Placements []Placement `json:"placements"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	PageWidth  int         `json:"page_width"`
	PageHeight int         `json:"page_height"`
	Occupancy  float64     `json:"occupancy"`
}

// UsedArea returns the total padded area covered by placements.
func (p Page) UsedArea() int {
	var total int
	for _, pl := range p.Placements {
		total += pl.Width * pl.Height
	}
	return total
}

// PackResult holds the full multi-page packing solution.
type PackResult struct {
	Pages []Page `json:"pages"`
}

// SpriteCount returns the number of sprites placed across all pages.
func (r PackResult) SpriteCount() int {
	total := 0
	for _, p := range r.Pages {
		total += len(p.Placements)
	}
	return total
}

// AverageOccupancy returns the mean page occupancy, or 0 for an empty result.
func (r PackResult) AverageOccupancy() float64 {
	if len(r.Pages) == 0 {
		return 0
	}
	var sum float64
	for _, p := range r.Pages {
		sum += p.Occupancy
	}
	return sum / float64(len(r.Pages))
}

// Project ties sprites, settings, and an optional result together for save/load.
type Project struct {
	Name     string       `json:"name"`
	Sprites  []Sprite     `json:"sprites"`
	Settings PackSettings `json:"settings"`
	Result   *PackResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Sprites:  []Sprite{},
		Settings: DefaultPackSettings(),
	}
}
