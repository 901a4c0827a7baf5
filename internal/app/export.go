package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

func newExportCmd() *cobra.Command {
	var (
		vf      viewFlags
		flagOut string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog (or a filtered part of it) as YAML",
		Long: `Write resources as a YAML catalog that --catalog can read back. Use the
filter flags to export a subset, e.g. a category or a search.

Examples:
  resourcectl export > resources.yml
  resourcectl export --category Recipes -o recipes.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := vf.options(cfg.DefaultView())
			if err != nil {
				return err
			}
			resources, err := loadResources(cmd.Context())
			if err != nil {
				return err
			}
			items := view.Compose(resources, opts).Items

			if flagOut == "" {
				data, err := resource.Marshal(items)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := resource.Save(flagOut, items); err != nil {
				return fmt.Errorf("writing %s: %w", flagOut, err)
			}
			ok("Exported %d resources to %s", len(items), flagOut)
			return nil
		},
	}

	vf.register(cmd, true)
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
