package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage page templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available page templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPAGE SIZE\tPOT\tPADDING\tDESCRIPTION")
		for _, tpl := range store.Templates {
			s := tpl.Settings
			fmt.Fprintf(w, "%s\t%s\t%dx%d\t%t\t%dx%d\t%s\n",
				tpl.ID, tpl.Name, s.MaxWidth, s.MaxHeight, s.PowerOfTwo, s.PaddingX, s.PaddingY, tpl.Description)
		}
		return w.Flush()
	},
}

var templateAddFlags struct {
	description string
	maxWidth    int
	maxHeight   int
	paddingX    int
	paddingY    int
	pot         bool
	rotation    bool
}

var templatesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a page template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := model.DefaultPackSettings()
		settings.MaxWidth = templateAddFlags.maxWidth
		settings.MaxHeight = templateAddFlags.maxHeight
		settings.PaddingX = templateAddFlags.paddingX
		settings.PaddingY = templateAddFlags.paddingY
		settings.PowerOfTwo = templateAddFlags.pot
		settings.Rotation = templateAddFlags.rotation
		if err := settings.Validate(); err != nil {
			return err
		}

		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if store.FindByName(args[0]) != nil {
			return fmt.Errorf("a template named %q already exists", args[0])
		}

		tpl := model.NewPageTemplate(args[0], templateAddFlags.description, settings)
		store.Add(tpl)
		if err := project.SaveDefaultTemplates(store); err != nil {
			return err
		}
		fmt.Printf("added template %s (%s)\n", tpl.Name, tpl.ID)
		return nil
	},
}

var templatesRemoveCmd = &cobra.Command{
	Use:   "remove <id|name>",
	Short: "Remove a page template by ID or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		tpl := store.FindByID(args[0])
		if tpl == nil {
			tpl = store.FindByName(args[0])
		}
		if tpl == nil {
			return fmt.Errorf("no template with ID or name %q", args[0])
		}
		name, id := tpl.Name, tpl.ID
		store.Remove(id)
		if err := project.SaveDefaultTemplates(store); err != nil {
			return err
		}
		fmt.Printf("removed template %s (%s)\n", name, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesAddCmd)
	templatesCmd.AddCommand(templatesRemoveCmd)

	templatesAddCmd.Flags().StringVar(&templateAddFlags.description, "description", "", "Template description")
	templatesAddCmd.Flags().IntVar(&templateAddFlags.maxWidth, "max-width", 1024, "Largest candidate page width")
	templatesAddCmd.Flags().IntVar(&templateAddFlags.maxHeight, "max-height", 1024, "Largest candidate page height")
	templatesAddCmd.Flags().IntVar(&templateAddFlags.paddingX, "padding-x", 2, "Horizontal padding around each sprite")
	templatesAddCmd.Flags().IntVar(&templateAddFlags.paddingY, "padding-y", 2, "Vertical padding around each sprite")
	templatesAddCmd.Flags().BoolVar(&templateAddFlags.pot, "pot", true, "Restrict page sizes to powers of two")
	templatesAddCmd.Flags().BoolVar(&templateAddFlags.rotation, "rotation", false, "Allow 90 degree sprite rotation")
}
