package engine

import (
	"fmt"

	"github.com/piwi3910/atlaspack/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
}

// ComparisonResult holds the packing result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario         ComparisonScenario
	Result           model.PackResult
	PagesUsed        int
	SpritesPlaced    int
	AverageOccupancy float64
	Err              error
}

// CompareScenarios packs the same sprites under each scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// different packing parameters (e.g., fast vs. full mode, rotation on/off).
func CompareScenarios(scenarios []ComparisonScenario, sprites []model.Sprite) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		cr := ComparisonResult{Scenario: scenario}

		packer, err := New(scenario.Settings)
		if err != nil {
			cr.Err = err
			results = append(results, cr)
			continue
		}
		result, err := packer.Pack(sprites)
		if err != nil {
			cr.Err = err
			results = append(results, cr)
			continue
		}

		cr.Result = result
		cr.PagesUsed = len(result.Pages)
		cr.SpritesPlaced = result.SpriteCount()
		cr.AverageOccupancy = result.AverageOccupancy()
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on the
// current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(baseSettings model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: the other packing mode
	altMode := baseSettings
	altMode.Fast = !baseSettings.Fast
	name := "Fast Mode"
	if baseSettings.Fast {
		name = "Full Mode"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     name,
		Settings: altMode,
	})

	// Scenario: toggle rotation
	altRot := baseSettings
	altRot.Rotation = !baseSettings.Rotation
	name = "With Rotation"
	if baseSettings.Rotation {
		name = "Without Rotation"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     name,
		Settings: altRot,
	})

	// Scenario: free page sizes
	if baseSettings.PowerOfTwo {
		freeSize := baseSettings
		freeSize.PowerOfTwo = false
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Free Page Sizes",
			Settings: freeSize,
		})
	}

	// Scenario: no padding
	if baseSettings.PaddingX > 0 || baseSettings.PaddingY > 0 {
		noPad := baseSettings
		noPad.PaddingX = 0
		noPad.PaddingY = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("No Padding (was %dx%d)", baseSettings.PaddingX, baseSettings.PaddingY),
			Settings: noPad,
		})
	}

	return scenarios
}
