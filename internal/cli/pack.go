package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/engine"
	"github.com/piwi3910/atlaspack/internal/export"
	"github.com/piwi3910/atlaspack/internal/importer"
	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
	"github.com/piwi3910/atlaspack/internal/render"
)

var packFlags struct {
	csvPath     string
	excelPath   string
	imageDir    string
	projectPath string
	template    string

	minWidth  int
	maxWidth  int
	minHeight int
	maxHeight int
	paddingX  int
	paddingY  int
	pot       bool
	fast      bool
	rotation  bool

	outDir   string
	baseName string
	renderTo bool
	pdfOut   bool
	labels   bool
	dxfOut   bool
	saveAs   string
}

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack sprites and write atlas pages",
	Long: `Packs sprites from a CSV/Excel list, an image directory, or a saved
project into atlas pages. Always writes the JSON atlas descriptor; page
images and PDF/label/DXF reports are opt-in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sprites, settings, err := gatherInput(cmd)
		if err != nil {
			return err
		}
		if len(sprites) == 0 {
			return fmt.Errorf("no sprites to pack; use --csv, --xlsx, --images, or --project")
		}

		packer, err := engine.New(settings)
		if err != nil {
			return err
		}
		result, err := packer.Pack(sprites)
		if err != nil {
			return err
		}

		printSummary(result)

		if err := writeOutputs(sprites, settings, result); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVar(&packFlags.csvPath, "csv", "", "Import sprites from a CSV file")
	packCmd.Flags().StringVar(&packFlags.excelPath, "xlsx", "", "Import sprites from an Excel file")
	packCmd.Flags().StringVar(&packFlags.imageDir, "images", "", "Import sprites from an image directory")
	packCmd.Flags().StringVar(&packFlags.projectPath, "project", "", "Load sprites and settings from a project file")
	packCmd.Flags().StringVar(&packFlags.template, "template", "", "Use the page template with this name")

	packCmd.Flags().IntVar(&packFlags.minWidth, "min-width", 16, "Smallest candidate page width")
	packCmd.Flags().IntVar(&packFlags.maxWidth, "max-width", 1024, "Largest candidate page width")
	packCmd.Flags().IntVar(&packFlags.minHeight, "min-height", 16, "Smallest candidate page height")
	packCmd.Flags().IntVar(&packFlags.maxHeight, "max-height", 1024, "Largest candidate page height")
	packCmd.Flags().IntVar(&packFlags.paddingX, "padding-x", 2, "Horizontal padding around each sprite")
	packCmd.Flags().IntVar(&packFlags.paddingY, "padding-y", 2, "Vertical padding around each sprite")
	packCmd.Flags().BoolVar(&packFlags.pot, "pot", true, "Restrict page sizes to powers of two")
	packCmd.Flags().BoolVar(&packFlags.fast, "fast", false, "Fast mode: sorted insertion instead of full search")
	packCmd.Flags().BoolVar(&packFlags.rotation, "rotation", false, "Allow 90 degree sprite rotation")

	packCmd.Flags().StringVarP(&packFlags.outDir, "out", "o", ".", "Output directory")
	packCmd.Flags().StringVar(&packFlags.baseName, "name", "atlas", "Base name for output files")
	packCmd.Flags().BoolVar(&packFlags.renderTo, "render", false, "Compose page PNG images")
	packCmd.Flags().BoolVar(&packFlags.pdfOut, "pdf", false, "Write a PDF layout report")
	packCmd.Flags().BoolVar(&packFlags.labels, "labels", false, "Write a PDF of QR sprite labels")
	packCmd.Flags().BoolVar(&packFlags.dxfOut, "dxf", false, "Write a DXF page drawing")
	packCmd.Flags().StringVar(&packFlags.saveAs, "save", "", "Save sprites, settings, and result as a project file")
}

// gatherInput assembles the sprite list and effective settings from the
// project file, template, app config defaults, and explicit flags, in
// ascending priority.
func gatherInput(cmd *cobra.Command) ([]model.Sprite, model.PackSettings, error) {
	settings := model.DefaultPackSettings()

	// App config defaults come first.
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return nil, settings, fmt.Errorf("cannot load app config: %w", err)
	}
	config.ApplyToSettings(&settings)

	var sprites []model.Sprite

	if packFlags.projectPath != "" {
		p, err := project.LoadProject(packFlags.projectPath)
		if err != nil {
			return nil, settings, err
		}
		sprites = append(sprites, p.Sprites...)
		settings = p.Settings
	}

	if packFlags.template != "" {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return nil, settings, fmt.Errorf("cannot load templates: %w", err)
		}
		tpl := store.FindByName(packFlags.template)
		if tpl == nil {
			return nil, settings, fmt.Errorf("no page template named %q", packFlags.template)
		}
		settings = tpl.Settings
	}

	// Explicit flags override whatever the sources above provided.
	applyFlag := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	applyFlag("min-width", func() { settings.MinWidth = packFlags.minWidth })
	applyFlag("max-width", func() { settings.MaxWidth = packFlags.maxWidth })
	applyFlag("min-height", func() { settings.MinHeight = packFlags.minHeight })
	applyFlag("max-height", func() { settings.MaxHeight = packFlags.maxHeight })
	applyFlag("padding-x", func() { settings.PaddingX = packFlags.paddingX })
	applyFlag("padding-y", func() { settings.PaddingY = packFlags.paddingY })
	applyFlag("pot", func() { settings.PowerOfTwo = packFlags.pot })
	applyFlag("fast", func() { settings.Fast = packFlags.fast })
	applyFlag("rotation", func() { settings.Rotation = packFlags.rotation })

	for _, src := range []struct {
		path   string
		load   func(string) importer.ImportResult
		format string
	}{
		{packFlags.csvPath, importer.ImportCSV, "CSV"},
		{packFlags.excelPath, importer.ImportExcel, "Excel"},
		{packFlags.imageDir, importer.ImportImageDir, "image directory"},
	} {
		if src.path == "" {
			continue
		}
		result := src.load(src.path)
		for _, w := range result.Warnings {
			fmt.Printf("warning (%s): %s\n", src.format, w)
		}
		if len(result.Errors) > 0 {
			for _, e := range result.Errors {
				fmt.Printf("error (%s): %s\n", src.format, e)
			}
			return nil, settings, fmt.Errorf("%s import failed with %d error(s)", src.format, len(result.Errors))
		}
		sprites = append(sprites, result.Sprites...)
	}

	return sprites, settings, nil
}

func printSummary(result model.PackResult) {
	spriteArea := 0
	for _, page := range result.Pages {
		for _, pl := range page.Placements {
			spriteArea += pl.Sprite.Area()
		}
	}
	fmt.Printf("Packed %d sprites (%d px² of artwork) onto %d page(s), average occupancy %.1f%%\n",
		result.SpriteCount(), spriteArea, len(result.Pages), result.AverageOccupancy()*100)
	for i, page := range result.Pages {
		fmt.Printf("  page %d: %dx%d px, %d sprites, %.1f%% occupied\n",
			i+1, page.PageWidth, page.PageHeight, len(page.Placements), page.Occupancy*100)
	}
}

func writeOutputs(sprites []model.Sprite, settings model.PackSettings, result model.PackResult) error {
	out := func(ext string) string {
		return filepath.Join(packFlags.outDir, packFlags.baseName+ext)
	}

	descriptorPath := out(".json")
	if err := export.ExportDescriptor(descriptorPath, result, settings, packFlags.baseName); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", descriptorPath)

	if packFlags.renderTo {
		paths, err := render.WriteResult(packFlags.outDir, packFlags.baseName, result, settings)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
	}
	if packFlags.pdfOut {
		if err := export.ExportPDF(out(".pdf"), result, settings); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out(".pdf"))
	}
	if packFlags.labels {
		if err := export.ExportLabels(out("-labels.pdf"), result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out("-labels.pdf"))
	}
	if packFlags.dxfOut {
		if err := export.ExportDXF(out(".dxf"), result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out(".dxf"))
	}

	if packFlags.saveAs != "" {
		p := model.Project{
			Name:     packFlags.baseName,
			Sprites:  sprites,
			Settings: settings,
			Result:   &result,
		}
		if err := project.SaveProject(packFlags.saveAs, p); err != nil {
			return err
		}
		fmt.Printf("saved project %s\n", packFlags.saveAs)

		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err == nil {
			project.RememberProject(&config, packFlags.saveAs)
			if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
				fmt.Printf("warning: cannot update recent projects: %v\n", err)
			}
		}
	}

	return nil
}
