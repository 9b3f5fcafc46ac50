package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.atlaspack.json")

	p := model.NewProject()
	p.Name = "game"
	p.Sprites = append(p.Sprites, model.NewSprite("hero", 64, 48))
	p.Settings.Rotation = true

	require.NoError(t, SaveProject(path, p))

	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoadProject_MissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadProject_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadProject(path)
	assert.Error(t, err)
}

func TestLoadProject_NilSpritesNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"empty"}`), 0644))

	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Sprites)
	assert.Empty(t, loaded.Sprites)
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := model.DefaultAppConfig()
	config.DefaultMaxWidth = 2048
	config.OutputDir = "/tmp/out"

	require.NoError(t, SaveAppConfig(path, config))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), loaded)
}

func TestRememberProject(t *testing.T) {
	config := model.DefaultAppConfig()

	RememberProject(&config, "/a")
	RememberProject(&config, "/b")
	RememberProject(&config, "/a")

	assert.Equal(t, []string{"/a", "/b"}, config.RecentProjects)
}

func TestRememberProject_CapsAtTen(t *testing.T) {
	config := model.DefaultAppConfig()
	for i := 0; i < 15; i++ {
		RememberProject(&config, filepath.Join("/p", string(rune('a'+i))))
	}
	assert.Len(t, config.RecentProjects, 10)
}

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewPageTemplate("Test", "A test template", model.DefaultPackSettings()))

	require.NoError(t, SaveTemplates(path, store))

	loaded, err := LoadTemplates(path)
	require.NoError(t, err)
	require.Len(t, loaded.Templates, 1)
	assert.Equal(t, "Test", loaded.Templates[0].Name)
}

func TestLoadTemplates_MissingFileSeedsBuiltins(t *testing.T) {
	loaded, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Templates)
	assert.NotNil(t, loaded.FindByName("Mobile 1024 POT"))
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	config := model.DefaultAppConfig()
	config.DefaultRotation = true
	templates := model.NewTemplateStore()
	templates.Add(model.NewPageTemplate("UI", "", model.DefaultPackSettings()))

	require.NoError(t, ExportAllData(path, config, templates))

	backup, err := ImportAllData(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", backup.Version)
	assert.NotEmpty(t, backup.CreatedAt)
	assert.Equal(t, config, backup.Config)
	assert.Equal(t, templates, backup.Templates)
}

func TestImportAllData_MissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config":{}}`), 0644))

	_, err := ImportAllData(path)
	assert.Error(t, err)
}
