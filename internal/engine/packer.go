package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/atlaspack/internal/model"
)

// SpriteTooLargeError reports a sprite whose padded dimensions exceed the
// maximum page size in every permitted orientation. Such an input can never
// be placed, so packing aborts instead of silently dropping it.
type SpriteTooLargeError struct {
	Sprite model.Sprite
	Axis   string // "width" or "height"
	Limit  int
}

func (e *SpriteTooLargeError) Error() string {
	return fmt.Sprintf("sprite %q (%dx%d px) does not fit the max page %s of %d px",
		e.Sprite.Name, e.Sprite.Width, e.Sprite.Height, e.Axis, e.Limit)
}

// Packer finds near-minimal atlas pages for a set of sprites. Settings are
// validated at construction and treated as immutable afterwards, so one
// Packer can run any number of Pack calls.
type Packer struct {
	settings model.PackSettings
}

func New(settings model.PackSettings) (*Packer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Packer{settings: settings}, nil
}

// Settings returns the validated configuration this packer was built with.
func (p *Packer) Settings() model.PackSettings {
	return p.settings
}

// Pack places every sprite, opening additional pages whenever a page cannot
// hold all that remain. The input slice is not modified and the sprite order
// within it only matters as a deterministic tie-break.
func (p *Packer) Pack(sprites []model.Sprite) (model.PackResult, error) {
	items := make([]item, 0, len(sprites))
	for _, s := range sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return model.PackResult{}, fmt.Errorf("sprite %q has degenerate dimensions %dx%d", s.Name, s.Width, s.Height)
		}
		items = append(items, item{
			sprite:    s,
			width:     s.Width + p.settings.PaddingX,
			height:    s.Height + p.settings.PaddingY,
			canRotate: s.CanRotate,
		})
	}

	// Fast mode inserts in slice order, so pre-sort largest-first to keep
	// the big sprites from arriving once the page is already fragmented.
	if p.settings.Fast {
		if p.settings.Rotation {
			sort.SliceStable(items, func(i, j int) bool {
				return max(items[i].width, items[i].height) > max(items[j].width, items[j].height)
			})
		} else {
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].width > items[j].width
			})
		}
	}

	var result model.PackResult
	for len(items) > 0 {
		t, err := p.packPage(items)
		if err != nil {
			return model.PackResult{}, err
		}
		result.Pages = append(result.Pages, t.page)
		items = t.remaining
	}
	return result, nil
}

// trial is the outcome of packing a set of items at one candidate page size.
// valid means some page was produced at all; a full pack leaves remaining
// empty.
type trial struct {
	page      model.Page
	remaining []item
	valid     bool
}

// betterTrial keeps whichever trial fills its page better. b is the newer
// trial and wins ties, so later (smaller) candidate sizes are preferred when
// occupancy is equal.
func betterTrial(a, b trial) trial {
	if !a.valid {
		return b
	}
	if !b.valid {
		return a
	}
	if a.page.Occupancy > b.page.Occupancy {
		return a
	}
	return b
}

// packPage binary-searches page widths and heights for the smallest page that
// holds every item, keeping the best-occupancy fully-packed trial seen. When
// no candidate size holds everything, it falls back to a partial pack at the
// maximum size and hands the leftovers back for the next page.
func (p *Packer) packPage(items []item) (trial, error) {
	s := p.settings

	// The page can never be narrower than the widest item, or shorter than
	// the tallest, counting rotation when the item permits it. Starting the
	// bracket there skips candidate sizes that cannot possibly succeed.
	minWidth, minHeight := s.MinWidth, s.MinHeight
	for _, it := range items {
		rw := it.height - s.PaddingY + s.PaddingX
		rh := it.width - s.PaddingX + s.PaddingY
		fitsUpright := it.width <= s.MaxWidth && it.height <= s.MaxHeight
		fitsRotated := it.canRotate && s.Rotation && rw <= s.MaxWidth && rh <= s.MaxHeight
		if !fitsUpright && !fitsRotated {
			axis, limit := "width", s.MaxWidth
			if it.width <= s.MaxWidth {
				axis, limit = "height", s.MaxHeight
			}
			return trial{}, &SpriteTooLargeError{Sprite: it.sprite, Axis: axis, Limit: limit}
		}
		w, h := it.width, it.height
		switch {
		case fitsUpright && fitsRotated:
			w, h = min(w, rw), min(h, rh)
		case fitsRotated:
			w, h = rw, rh
		}
		minWidth = max(minWidth, w)
		minHeight = max(minHeight, h)
	}

	fuzziness := 15
	if s.Fast {
		fuzziness = 25
	}
	widthSearch := newSizeSearch(minWidth, s.MaxWidth, fuzziness, s.PowerOfTwo)
	heightSearch := newSizeSearch(minHeight, s.MaxHeight, fuzziness, s.PowerOfTwo)

	width := widthSearch.reset()
	height := heightSearch.reset()

	var best trial
	for {
		var bestWidth trial
		for {
			t := p.packAtSize(true, width, height, items)
			bestWidth = betterTrial(bestWidth, t)
			w, ok := widthSearch.next(t.valid)
			if !ok {
				break
			}
			width = w
		}
		best = betterTrial(best, bestWidth)

		h, ok := heightSearch.next(bestWidth.valid)
		if !ok {
			break
		}
		height = h
		width = widthSearch.reset()
	}

	if !best.valid {
		best = p.packAtSize(false, s.MaxWidth, s.MaxHeight, items)
	}
	if !best.valid {
		// The too-large checks above guarantee at least one item fits a
		// max-size page, so an empty fallback would loop forever.
		return trial{}, fmt.Errorf("no sprite could be placed on a %dx%d page", s.MaxWidth, s.MaxHeight)
	}
	return best, nil
}

// packAtSize tries every placement heuristic at a fixed page size and keeps
// the best-occupancy outcome. With fully set, trials that leave items over
// are discarded; without it, a partial result is acceptable and the unplaced
// items ride along in the trial.
func (p *Packer) packAtSize(fully bool, width, height int, items []item) trial {
	var best trial
	for _, h := range Heuristics {
		b := newBin(width, height, p.settings)

		var remaining []item
		if p.settings.Fast {
			// In-order insertion; the first failure defers the rest so the
			// relative order survives onto the next page.
			for i, it := range items {
				if _, ok := b.insert(it, h); !ok {
					remaining = append(remaining, items[i:]...)
					break
				}
			}
		} else {
			remaining = b.packAll(items, h)
		}

		if fully && len(remaining) > 0 {
			continue
		}
		if len(b.used) == 0 {
			continue
		}
		t := trial{
			page:      b.result(),
			remaining: remaining,
			valid:     true,
		}
		best = betterTrial(best, t)
	}
	return best
}
