package engine

import (
	"math"

	"github.com/piwi3910/atlaspack/internal/model"
)

// item is a sprite with padding-inflated dimensions, the unit of work inside
// the engine. Items are value-like and are never shared between bins.
type item struct {
	sprite    model.Sprite
	width     int
	height    int
	canRotate bool
}

// freeRect is an axis-aligned empty region within a bin.
type freeRect struct {
	x, y, w, h int
}

// bin runs one maximal-rectangles packing trial at a fixed candidate page
// size. The free list starts as a single rectangle covering the whole page;
// each placement splits every overlapping free rectangle into up to four
// slivers and then prunes any free rectangle contained in another, so the
// list only ever holds maximal rectangles. The free list is unordered after
// pruning; its iteration order matters only as a deterministic tie-break.
// A bin is scoped to a single (page size, heuristic) trial and discarded
// after scoring.
type bin struct {
	width, height      int
	paddingX, paddingY int
	rotation           bool
	used               []model.Placement
	free               []freeRect
}

func newBin(width, height int, settings model.PackSettings) *bin {
	return &bin{
		width:    width,
		height:   height,
		paddingX: settings.PaddingX,
		paddingY: settings.PaddingY,
		rotation: settings.Rotation,
		free:     []freeRect{{0, 0, width, height}},
	}
}

// insert scores and places a single item. Order is defined by the caller.
// Returns false when no free rectangle can hold the item in any permitted
// orientation.
func (b *bin) insert(it item, h Heuristic) (model.Placement, bool) {
	c := b.score(it, h)
	if !c.found {
		return model.Placement{}, false
	}
	return b.place(it, c), true
}

// packAll greedily places whichever remaining item currently scores best,
// re-evaluating every candidate against the free list before each placement.
// Quadratic in item count, but noticeably denser than insertion order.
// Returns the items that could not be placed.
func (b *bin) packAll(items []item, h Heuristic) []item {
	remaining := append([]item(nil), items...)
	for len(remaining) > 0 {
		bestIdx := -1
		var best candidate
		for i, it := range remaining {
			if c := b.score(it, h); c.better(best) {
				best = c
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			break
		}
		b.place(remaining[bestIdx], best)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return remaining
}

// result computes the tight bounding box of the placements and the occupancy
// against the candidate page area, so trials at different candidate sizes
// remain comparable.
func (b *bin) result() model.Page {
	var w, h, usedArea int
	for _, pl := range b.used {
		w = max(w, pl.Right())
		h = max(h, pl.Bottom())
		usedArea += pl.Width * pl.Height
	}
	return model.Page{
		Placements: append([]model.Placement(nil), b.used...),
		Width:      w,
		Height:     h,
		PageWidth:  b.width,
		PageHeight: b.height,
		Occupancy:  float64(usedArea) / float64(b.width*b.height),
	}
}

// score evaluates where the item would be placed under the given heuristic.
// Both orientations are considered when rotation is permitted; rotating
// swaps which axis carries which padding.
func (b *bin) score(it item, h Heuristic) candidate {
	rotatedWidth := it.height - b.paddingY + b.paddingX
	rotatedHeight := it.width - b.paddingX + b.paddingY
	rotate := it.canRotate && b.rotation

	switch h {
	case BestShortSideFit:
		return b.findShortSideFit(it.width, it.height, rotatedWidth, rotatedHeight, rotate)
	case BestLongSideFit:
		return b.findLongSideFit(it.width, it.height, rotatedWidth, rotatedHeight, rotate)
	case BestAreaFit:
		return b.findAreaFit(it.width, it.height, rotatedWidth, rotatedHeight, rotate)
	case BottomLeft:
		return b.findBottomLeft(it.width, it.height, rotatedWidth, rotatedHeight, rotate)
	case ContactPoint:
		return b.findContactPoint(it.width, it.height, rotatedWidth, rotatedHeight, rotate)
	default:
		return candidate{}
	}
}

// place fixes the item at the candidate position, splits every overlapping
// free rectangle into its leftover slivers, and prunes the free list back to
// maximal rectangles.
func (b *bin) place(it item, c candidate) model.Placement {
	placed := freeRect{c.x, c.y, c.width, c.height}

	var next []freeRect
	for _, fr := range b.free {
		if !overlaps(fr, placed) {
			next = append(next, fr)
			continue
		}
		next = appendSplits(next, fr, placed)
	}
	b.free = pruneContained(next)

	pl := model.Placement{
		Sprite:  it.sprite,
		X:       c.x,
		Y:       c.y,
		Width:   c.width,
		Height:  c.height,
		Rotated: c.rotated,
	}
	b.used = append(b.used, pl)
	return pl
}

// appendSplits adds the up-to-four leftover slivers of fr around placed:
// left and right strips keep fr's full height, top and bottom strips keep
// its full width. Only slivers with positive extent are produced.
func appendSplits(dst []freeRect, fr, placed freeRect) []freeRect {
	if placed.x > fr.x {
		dst = append(dst, freeRect{fr.x, fr.y, placed.x - fr.x, fr.h})
	}
	if placed.x+placed.w < fr.x+fr.w {
		dst = append(dst, freeRect{placed.x + placed.w, fr.y, fr.x + fr.w - (placed.x + placed.w), fr.h})
	}
	if placed.y > fr.y {
		dst = append(dst, freeRect{fr.x, fr.y, fr.w, placed.y - fr.y})
	}
	if placed.y+placed.h < fr.y+fr.h {
		dst = append(dst, freeRect{fr.x, placed.y + placed.h, fr.w, fr.y + fr.h - (placed.y + placed.h)})
	}
	return dst
}

// pruneContained removes any free rectangle fully contained within another.
// This pairwise pass is what keeps the free list maximal.
func pruneContained(rects []freeRect) []freeRect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]freeRect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, other := range rects {
			if i == j {
				continue
			}
			if !contains(other, a) {
				continue
			}
			if contains(a, other) && i < j {
				// Exact duplicate: the first occurrence survives.
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func overlaps(a, b freeRect) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x &&
		a.y < b.y+b.h && a.y+a.h > b.y
}

// contains reports whether outer fully contains inner.
func contains(outer, inner freeRect) bool {
	return inner.x >= outer.x && inner.y >= outer.y &&
		inner.x+inner.w <= outer.x+outer.w &&
		inner.y+inner.h <= outer.y+outer.h
}

func (b *bin) findShortSideFit(width, height, rotatedWidth, rotatedHeight int, rotate bool) candidate {
	var best candidate
	for _, fr := range b.free {
		if fr.w >= width && fr.h >= height {
			leftoverHoriz := fr.w - width
			leftoverVert := fr.h - height
			c := candidate{
				x: fr.x, y: fr.y, width: width, height: height,
				score1: min(leftoverHoriz, leftoverVert),
				score2: max(leftoverHoriz, leftoverVert),
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
		if rotate && fr.w >= rotatedWidth && fr.h >= rotatedHeight {
			leftoverHoriz := fr.w - rotatedWidth
			leftoverVert := fr.h - rotatedHeight
			c := candidate{
				x: fr.x, y: fr.y, width: rotatedWidth, height: rotatedHeight, rotated: true,
				score1: min(leftoverHoriz, leftoverVert),
				score2: max(leftoverHoriz, leftoverVert),
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
	}
	return best
}

func (b *bin) findLongSideFit(width, height, rotatedWidth, rotatedHeight int, rotate bool) candidate {
	var best candidate
	for _, fr := range b.free {
		if fr.w >= width && fr.h >= height {
			leftoverHoriz := fr.w - width
			leftoverVert := fr.h - height
			c := candidate{
				x: fr.x, y: fr.y, width: width, height: height,
				score1: max(leftoverHoriz, leftoverVert),
				score2: min(leftoverHoriz, leftoverVert),
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
		if rotate && fr.w >= rotatedWidth && fr.h >= rotatedHeight {
			leftoverHoriz := fr.w - rotatedWidth
			leftoverVert := fr.h - rotatedHeight
			c := candidate{
				x: fr.x, y: fr.y, width: rotatedWidth, height: rotatedHeight, rotated: true,
				score1: max(leftoverHoriz, leftoverVert),
				score2: min(leftoverHoriz, leftoverVert),
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
	}
	return best
}

func (b *bin) findAreaFit(width, height, rotatedWidth, rotatedHeight int, rotate bool) candidate {
	var best candidate
	for _, fr := range b.free {
		// Both orientations share one leftover-area score.
		areaFit := fr.w*fr.h - width*height

		if fr.w >= width && fr.h >= height {
			leftoverHoriz := fr.w - width
			leftoverVert := fr.h - height
			c := candidate{
				x: fr.x, y: fr.y, width: width, height: height,
				score1: areaFit,
				score2: min(leftoverHoriz, leftoverVert),
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
		if rotate && fr.w >= rotatedWidth && fr.h >= rotatedHeight {
			leftoverHoriz := fr.w - rotatedWidth
			leftoverVert := fr.h - rotatedHeight
			c := candidate{
				x: fr.x, y: fr.y, width: rotatedWidth, height: rotatedHeight, rotated: true,
				score1: areaFit,
				score2: min(leftoverHoriz, leftoverVert),
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
	}
	return best
}

func (b *bin) findBottomLeft(width, height, rotatedWidth, rotatedHeight int, rotate bool) candidate {
	var best candidate
	for _, fr := range b.free {
		if fr.w >= width && fr.h >= height {
			c := candidate{
				x: fr.x, y: fr.y, width: width, height: height,
				score1: fr.y + height,
				score2: fr.x,
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
		if rotate && fr.w >= rotatedWidth && fr.h >= rotatedHeight {
			c := candidate{
				x: fr.x, y: fr.y, width: rotatedWidth, height: rotatedHeight, rotated: true,
				score1: fr.y + rotatedHeight,
				score2: fr.x,
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
	}
	return best
}

func (b *bin) findContactPoint(width, height, rotatedWidth, rotatedHeight int, rotate bool) candidate {
	var best candidate
	for _, fr := range b.free {
		if fr.w >= width && fr.h >= height {
			c := candidate{
				x: fr.x, y: fr.y, width: width, height: height,
				score1: -b.contactScore(fr.x, fr.y, width, height),
				score2: math.MaxInt,
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
		if rotate && fr.w >= rotatedWidth && fr.h >= rotatedHeight {
			c := candidate{
				x: fr.x, y: fr.y, width: rotatedWidth, height: rotatedHeight, rotated: true,
				score1: -b.contactScore(fr.x, fr.y, rotatedWidth, rotatedHeight),
				score2: math.MaxInt,
				found:  true,
			}
			if c.better(best) {
				best = c
			}
		}
	}
	return best
}

// contactScore sums the edge lengths the rectangle would share with the page
// border and with already-placed sprites.
func (b *bin) contactScore(x, y, width, height int) int {
	score := 0
	if x == 0 || x+width == b.width {
		score += height
	}
	if y == 0 || y+height == b.height {
		score += width
	}
	for _, u := range b.used {
		if u.X == x+width || u.Right() == x {
			score += commonIntervalLength(u.Y, u.Bottom(), y, y+height)
		}
		if u.Y == y+height || u.Bottom() == y {
			score += commonIntervalLength(u.X, u.Right(), x, x+width)
		}
	}
	return score
}

// commonIntervalLength returns 0 if the intervals are disjoint, or the
// length of their overlap otherwise.
func commonIntervalLength(i1start, i1end, i2start, i2end int) int {
	if i1end < i2start || i2end < i1start {
		return 0
	}
	return min(i1end, i2end) - max(i1start, i2start)
}
