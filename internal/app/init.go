package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/config"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/source"
)

func newInitCmd() *cobra.Command {
	var (
		force       bool
		withCatalog bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Long: `Write a config file holding the current effective settings (defaults,
environment and flags combined).

With --with-catalog the built-in catalog is also copied to
<output_dir>/resources.yml and registered as the catalog source, so it can
be edited by hand.`,
		Example: `  resourcectl init
  resourcectl init --with-catalog --latency 0s
  resourcectl init --config ./resourcectl.yml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				path = os.Getenv("RESOURCECTL_CONFIG")
			}
			if path == "" {
				path = config.DefaultPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			if withCatalog {
				catalogPath := filepath.Join(cfg.Defaults.OutputDir, "resources.yml")
				n, err := writeStarterCatalog(cmd.Context(), catalogPath)
				if err != nil {
					return err
				}
				ok("Copied %d built-in resources to %s", n, catalogPath)
				cfg.Source.Catalogs = []string{catalogPath}
			}

			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Wrote config to %s", path)

			fmt.Println()
			fmt.Println(color.CyanString("Next steps:"))
			fmt.Println("  resourcectl browse        # interactive browser")
			fmt.Printf("  resourcectl serve         # web page on http://%s:%d\n", cfg.Serve.Host, cfg.Serve.Port)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&withCatalog, "with-catalog", false, "Copy the built-in catalog to an editable file")

	return cmd
}

func writeStarterCatalog(ctx context.Context, path string) (int, error) {
	if _, err := os.Stat(path); err == nil {
		return 0, fmt.Errorf("catalog already exists at %s", path)
	}
	resources, err := source.Builtin().Fetch(ctx)
	if err != nil {
		return 0, err
	}
	if err := resource.Save(path, resources); err != nil {
		return 0, fmt.Errorf("writing catalog: %w", err)
	}
	return len(resources), nil
}
