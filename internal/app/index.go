package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/htmlpage"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

func newIndexCmd() *cobra.Command {
	var (
		vf       viewFlags
		flagOut  string
		flagOpen bool
	)

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Generate a static HTML page of the catalog",
		Long: `Generate an index.html that shows the catalog as a card grid, grouped by
category unless --category or --search narrows it. Open it in any web
browser without running resourcectl.`,
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

			out := flagOut
			if out == "" {
				out = filepath.Join(cfg.Defaults.OutputDir, "index.html")
			}
			out, err = filepath.Abs(out)
			if err != nil {
				return err
			}

			m := view.Compose(resources, opts)
			if err := htmlpage.WriteFile(out, m); err != nil {
				return fmt.Errorf("generating index: %w", err)
			}
			ok("Generated HTML index with %d resources", len(m.Items))

			if flagOpen {
				if err := openInBrowser(out); err != nil {
					warn("Could not open browser: %v", err)
					fmt.Printf("\nOpen in browser:\n  file://%s\n", out)
				}
			} else {
				fmt.Printf("\nOpen in browser:\n  file://%s\n", out)
			}
			return nil
		},
	}

	vf.register(cmd, true)
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output path (default: <output_dir>/index.html)")
	cmd.Flags().BoolVar(&flagOpen, "open", false, "Open the generated index in the default browser")

	return cmd
}
