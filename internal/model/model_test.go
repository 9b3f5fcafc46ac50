package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSprite(t *testing.T) {
	s := NewSprite("hero", 64, 48)

	assert.Len(t, s.ID, 8)
	assert.Equal(t, "hero", s.Name)
	assert.Equal(t, 64, s.Width)
	assert.Equal(t, 48, s.Height)
	assert.True(t, s.CanRotate, "sprites default to rotatable")
	assert.Equal(t, 64*48, s.Area())
}

func TestNewSprite_UniqueIDs(t *testing.T) {
	a := NewSprite("a", 1, 1)
	b := NewSprite("b", 1, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPackSettings_Validate(t *testing.T) {
	s := DefaultPackSettings()
	assert.NoError(t, s.Validate())

	s.MinWidth = s.MaxWidth + 1
	assert.Error(t, s.Validate())

	s = DefaultPackSettings()
	s.MinHeight = s.MaxHeight + 1
	assert.Error(t, s.Validate())
}

func TestPackSettings_ValidatePowerOfTwoMaxes(t *testing.T) {
	s := DefaultPackSettings()
	s.MaxWidth = 1000
	assert.Error(t, s.Validate(), "a POT search cannot honor a 1000px limit")

	s = DefaultPackSettings()
	s.MaxHeight = 1000
	assert.Error(t, s.Validate())

	// Free page sizes accept any limit.
	s = DefaultPackSettings()
	s.PowerOfTwo = false
	s.MaxWidth, s.MaxHeight = 1000, 900
	assert.NoError(t, s.Validate())
}

func TestPlacement_Edges(t *testing.T) {
	p := Placement{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 40, p.Right())
	assert.Equal(t, 60, p.Bottom())
}

func TestPage_UsedArea(t *testing.T) {
	page := Page{
		Placements: []Placement{
			{Width: 10, Height: 10},
			{Width: 5, Height: 4},
		},
	}
	assert.Equal(t, 120, page.UsedArea())
}

func TestPackResult_Stats(t *testing.T) {
	result := PackResult{
		Pages: []Page{
			{Placements: []Placement{{}, {}, {}}, Occupancy: 0.8},
			{Placements: []Placement{{}}, Occupancy: 0.4},
		},
	}
	assert.Equal(t, 4, result.SpriteCount())
	assert.InDelta(t, 0.6, result.AverageOccupancy(), 1e-9)
}

func TestPackResult_EmptyStats(t *testing.T) {
	var result PackResult
	assert.Equal(t, 0, result.SpriteCount())
	assert.Zero(t, result.AverageOccupancy())
}

func TestAppConfig_ApplyToSettings(t *testing.T) {
	config := DefaultAppConfig()
	config.DefaultMaxWidth = 4096
	config.DefaultRotation = true

	s := DefaultPackSettings()
	config.ApplyToSettings(&s)

	assert.Equal(t, 4096, s.MaxWidth)
	assert.True(t, s.Rotation)
}

func TestPageTemplate_ToProject(t *testing.T) {
	settings := DefaultPackSettings()
	settings.MaxWidth = 2048
	tpl := NewPageTemplate("Desktop", "big pages", settings)

	require.NotEmpty(t, tpl.ID)
	require.NotEmpty(t, tpl.CreatedAt)

	p := tpl.ToProject("my game")
	assert.Equal(t, "my game", p.Name)
	assert.Equal(t, 2048, p.Settings.MaxWidth)
	assert.Empty(t, p.Sprites)
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	a := NewPageTemplate("A", "", DefaultPackSettings())
	b := NewPageTemplate("B", "", DefaultPackSettings())
	store.Add(a)
	store.Add(b)

	assert.Equal(t, []string{"A", "B"}, store.Names())
	require.NotNil(t, store.FindByID(a.ID))
	assert.Equal(t, "A", store.FindByID(a.ID).Name)
	require.NotNil(t, store.FindByName("B"))
	assert.Nil(t, store.FindByName("C"))

	assert.True(t, store.Remove(a.ID))
	assert.False(t, store.Remove(a.ID))
	assert.Equal(t, []string{"B"}, store.Names())
}

func TestBuiltinTemplates(t *testing.T) {
	templates := BuiltinTemplates()
	require.Len(t, templates, 3)
	for _, tpl := range templates {
		assert.NoError(t, tpl.Settings.Validate(), "builtin %q must validate", tpl.Name)
	}
}
