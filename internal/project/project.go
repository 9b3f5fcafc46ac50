package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/atlaspack/internal/model"
)

// SaveProject writes a project (sprites, settings, and any packed result) to
// the given path as JSON, creating missing parent directories.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write project: %w", err)
	}
	return nil
}

// LoadProject reads a project from the given path.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("cannot read project: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("cannot parse project: %w", err)
	}
	if p.Sprites == nil {
		p.Sprites = []model.Sprite{}
	}
	return p, nil
}
