package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default pack settings applied to new projects
	DefaultMaxWidth   int  `json:"default_max_width"`
	DefaultMaxHeight  int  `json:"default_max_height"`
	DefaultPaddingX   int  `json:"default_padding_x"`
	DefaultPaddingY   int  `json:"default_padding_y"`
	DefaultPowerOfTwo bool `json:"default_power_of_two"`
	DefaultRotation   bool `json:"default_rotation"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	OutputDir      string   `json:"output_dir"` // Default directory for composed pages and descriptors
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultPackSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultPackSettings()
	return AppConfig{
		DefaultMaxWidth:   defaults.MaxWidth,
		DefaultMaxHeight:  defaults.MaxHeight,
		DefaultPaddingX:   defaults.PaddingX,
		DefaultPaddingY:   defaults.PaddingY,
		DefaultPowerOfTwo: defaults.PowerOfTwo,
		DefaultRotation:   defaults.Rotation,
		RecentProjects:    []string{},
		OutputDir:         "",
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings
// struct. This is used when creating a new project so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.MaxWidth = c.DefaultMaxWidth
	s.MaxHeight = c.DefaultMaxHeight
	s.PaddingX = c.DefaultPaddingX
	s.PaddingY = c.DefaultPaddingY
	s.PowerOfTwo = c.DefaultPowerOfTwo
	s.Rotation = c.DefaultRotation
}
