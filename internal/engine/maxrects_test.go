package engine

import (
	"testing"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainSettings() model.PackSettings {
	// No padding, no rotation: placements map 1:1 to sprite dimensions.
	s := model.DefaultPackSettings()
	s.PaddingX = 0
	s.PaddingY = 0
	s.Rotation = false
	return s
}

func testItem(name string, w, h int) item {
	return item{sprite: model.NewSprite(name, w, h), width: w, height: h, canRotate: true}
}

func TestBin_SplitProducesMaximalSlivers(t *testing.T) {
	// Placing a 50x50 in the corner of a 100x100 page must leave exactly two
	// maximal free rectangles: the full-height right strip and the full-width
	// bottom strip.
	b := newBin(100, 100, plainSettings())

	pl, ok := b.insert(testItem("A", 50, 50), BottomLeft)
	require.True(t, ok)
	assert.Equal(t, 0, pl.X)
	assert.Equal(t, 0, pl.Y)

	assert.ElementsMatch(t, []freeRect{
		{50, 0, 50, 100},
		{0, 50, 100, 50},
	}, b.free)
}

func TestBin_InsertFailsWhenNothingFits(t *testing.T) {
	b := newBin(20, 20, plainSettings())

	_, ok := b.insert(testItem("big", 30, 10), BestShortSideFit)
	assert.False(t, ok)
	assert.Empty(t, b.used)
}

func TestBin_RotationSwapsPaddedAxes(t *testing.T) {
	// A 10x4 item in a 4x10 bin only fits rotated. With asymmetric padding
	// the rotated footprint swaps which axis carries which padding.
	s := plainSettings()
	s.Rotation = true
	s.PaddingX = 2
	s.PaddingY = 1
	b := newBin(6, 11, s)

	// Padded upright footprint is 12x5, rotated footprint is 6x11.
	it := item{sprite: model.NewSprite("strip", 10, 4), width: 12, height: 5, canRotate: true}
	pl, ok := b.insert(it, BestShortSideFit)
	require.True(t, ok)
	assert.True(t, pl.Rotated)
	assert.Equal(t, 6, pl.Width)
	assert.Equal(t, 11, pl.Height)
}

func TestBin_RotationRespectsPerItemFlag(t *testing.T) {
	s := plainSettings()
	s.Rotation = true
	b := newBin(4, 10, s)

	it := testItem("locked", 10, 4)
	it.canRotate = false
	_, ok := b.insert(it, BestShortSideFit)
	assert.False(t, ok, "rotation is off for this item, so it cannot fit")
}

func TestBin_PackAllPlacesEverythingThatFits(t *testing.T) {
	b := newBin(10, 10, plainSettings())

	items := []item{
		testItem("A", 5, 5),
		testItem("B", 5, 5),
		testItem("C", 5, 5),
		testItem("D", 5, 5),
	}
	remaining := b.packAll(items, BestShortSideFit)

	assert.Empty(t, remaining)
	require.Len(t, b.used, 4)

	page := b.result()
	assert.Equal(t, 10, page.Width)
	assert.Equal(t, 10, page.Height)
	assert.InDelta(t, 1.0, page.Occupancy, 1e-9)
}

func TestBin_PackAllReturnsLeftoversInOrder(t *testing.T) {
	b := newBin(10, 10, plainSettings())

	items := []item{
		testItem("A", 10, 10),
		testItem("B", 8, 8),
		testItem("C", 6, 6),
	}
	remaining := b.packAll(items, BestAreaFit)

	require.Len(t, b.used, 1)
	require.Len(t, remaining, 2)
	assert.Equal(t, "B", remaining[0].sprite.Name)
	assert.Equal(t, "C", remaining[1].sprite.Name)
}

func TestBin_ResultMeasuresOccupancyAgainstCandidateArea(t *testing.T) {
	b := newBin(16, 16, plainSettings())

	_, ok := b.insert(testItem("A", 8, 8), BottomLeft)
	require.True(t, ok)

	page := b.result()
	assert.Equal(t, 8, page.Width, "bounding box is tight")
	assert.Equal(t, 8, page.Height)
	assert.Equal(t, 16, page.PageWidth, "candidate size is preserved")
	assert.Equal(t, 16, page.PageHeight)
	assert.InDelta(t, 64.0/256.0, page.Occupancy, 1e-9)
}

func TestPruneContained(t *testing.T) {
	rects := []freeRect{
		{0, 0, 10, 10},
		{2, 2, 4, 4},   // inside the first
		{0, 0, 10, 10}, // exact duplicate
		{8, 8, 6, 6},   // overlaps but is not contained
	}
	kept := pruneContained(rects)

	assert.ElementsMatch(t, []freeRect{
		{0, 0, 10, 10},
		{8, 8, 6, 6},
	}, kept)
}

func TestOverlapsAndContains(t *testing.T) {
	a := freeRect{0, 0, 10, 10}

	assert.True(t, overlaps(a, freeRect{5, 5, 10, 10}))
	assert.False(t, overlaps(a, freeRect{10, 0, 5, 5}), "touching edges do not overlap")
	assert.False(t, overlaps(a, freeRect{20, 20, 5, 5}))

	assert.True(t, contains(a, freeRect{2, 2, 4, 4}))
	assert.True(t, contains(a, a))
	assert.False(t, contains(a, freeRect{5, 5, 10, 10}))
}

func TestBin_BottomLeftPrefersLowestTopEdge(t *testing.T) {
	b := newBin(100, 100, plainSettings())

	_, ok := b.insert(testItem("wide", 100, 20), BottomLeft)
	require.True(t, ok)

	// The next item must go on top of the strip, not float elsewhere.
	pl, ok := b.insert(testItem("next", 30, 30), BottomLeft)
	require.True(t, ok)
	assert.Equal(t, 0, pl.X)
	assert.Equal(t, 20, pl.Y)
}

func TestBin_ContactScoreCountsEdgesAndNeighbours(t *testing.T) {
	b := newBin(100, 100, plainSettings())

	// Corner placement touches two page edges.
	assert.Equal(t, 20, b.contactScore(0, 0, 10, 10))
	// Mid-page placement touches nothing.
	assert.Equal(t, 0, b.contactScore(40, 40, 10, 10))

	_, ok := b.insert(testItem("A", 10, 10), ContactPoint)
	require.True(t, ok)

	// Flush against the placed sprite and the top edge.
	assert.Equal(t, 20, b.contactScore(10, 0, 10, 10))
}

func TestCommonIntervalLength(t *testing.T) {
	assert.Equal(t, 5, commonIntervalLength(0, 10, 5, 15))
	assert.Equal(t, 0, commonIntervalLength(0, 5, 10, 15))
	assert.Equal(t, 10, commonIntervalLength(0, 10, 0, 10))
}
