package model

import (
	"time"

	"github.com/google/uuid"
)

// PageTemplate represents a reusable page setup: size limits, padding, and
// placement flags, but no sprites or results.
type PageTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Settings    PackSettings `json:"settings"`
}

// NewPageTemplate creates a new template from the given settings.
func NewPageTemplate(name, description string, settings PackSettings) PageTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return PageTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    settings,
	}
}

// ToProject creates a fresh Project from this template.
func (t PageTemplate) ToProject(projectName string) Project {
	return Project{
		Name:     projectName,
		Sprites:  []Sprite{},
		Settings: t.Settings,
	}
}

// BuiltinTemplates returns page setups for common render targets.
func BuiltinTemplates() []PageTemplate {
	mobile := DefaultPackSettings()

	desktop := DefaultPackSettings()
	desktop.MaxWidth = 2048
	desktop.MaxHeight = 2048

	ui := DefaultPackSettings()
	ui.MaxWidth = 512
	ui.MaxHeight = 512
	ui.PowerOfTwo = false
	ui.PaddingX = 1
	ui.PaddingY = 1

	return []PageTemplate{
		NewPageTemplate("Mobile 1024 POT", "Power-of-two pages up to 1024x1024", mobile),
		NewPageTemplate("Desktop 2048 POT", "Power-of-two pages up to 2048x2048", desktop),
		NewPageTemplate("UI 512 tight", "Free-size pages up to 512x512 with 1px padding", ui),
	}
}

// TemplateStore holds a collection of page templates.
type TemplateStore struct {
	Templates []PageTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []PageTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t PageTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *PageTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *PageTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
