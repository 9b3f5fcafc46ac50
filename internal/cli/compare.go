package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/engine"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare packing outcomes across settings variants",
	Long: `Packs the same sprites under what-if variants of the current settings
(fast vs. full mode, rotation on/off, free page sizes, no padding) and prints
a side-by-side table of pages used and occupancy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sprites, settings, err := gatherInput(cmd)
		if err != nil {
			return err
		}
		if len(sprites) == 0 {
			return fmt.Errorf("no sprites to compare; use --csv, --xlsx, --images, or --project")
		}

		scenarios := engine.BuildDefaultScenarios(settings)
		results := engine.CompareScenarios(scenarios, sprites)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCENARIO\tPAGES\tSPRITES\tAVG OCCUPANCY")
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(w, "%s\t-\t-\terror: %v\n", r.Scenario.Name, r.Err)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n",
				r.Scenario.Name, r.PagesUsed, r.SpritesPlaced, r.AverageOccupancy*100)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&packFlags.csvPath, "csv", "", "Import sprites from a CSV file")
	compareCmd.Flags().StringVar(&packFlags.excelPath, "xlsx", "", "Import sprites from an Excel file")
	compareCmd.Flags().StringVar(&packFlags.imageDir, "images", "", "Import sprites from an image directory")
	compareCmd.Flags().StringVar(&packFlags.projectPath, "project", "", "Load sprites and settings from a project file")
	compareCmd.Flags().StringVar(&packFlags.template, "template", "", "Use the page template with this name")

	compareCmd.Flags().IntVar(&packFlags.minWidth, "min-width", 16, "Smallest candidate page width")
	compareCmd.Flags().IntVar(&packFlags.maxWidth, "max-width", 1024, "Largest candidate page width")
	compareCmd.Flags().IntVar(&packFlags.minHeight, "min-height", 16, "Smallest candidate page height")
	compareCmd.Flags().IntVar(&packFlags.maxHeight, "max-height", 1024, "Largest candidate page height")
	compareCmd.Flags().IntVar(&packFlags.paddingX, "padding-x", 2, "Horizontal padding around each sprite")
	compareCmd.Flags().IntVar(&packFlags.paddingY, "padding-y", 2, "Vertical padding around each sprite")
	compareCmd.Flags().BoolVar(&packFlags.pot, "pot", true, "Restrict page sizes to powers of two")
	compareCmd.Flags().BoolVar(&packFlags.fast, "fast", false, "Fast mode: sorted insertion instead of full search")
	compareCmd.Flags().BoolVar(&packFlags.rotation, "rotation", false, "Allow 90 degree sprite rotation")
}
