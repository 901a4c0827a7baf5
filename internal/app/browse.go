package app

import (
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/tui"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

func newBrowseCmd() *cobra.Command {
	var vf viewFlags

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse resources (interactive in a terminal)",
		Long: `Browse the catalog. In a terminal this opens the interactive browser;
otherwise it prints the resources, grouped by category unless a category
or search narrows the list.

Examples:
  resourcectl browse
  resourcectl ls --category Recipes --sort duration-shortest
  resourcectl browse --search sleep --no-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := vf.options(cfg.DefaultView())
			if err != nil {
				return err
			}

			if tui.ShouldUseTUI(cmd) {
				return runBrowser(cmd, opts)
			}

			resources, err := loadResources(cmd.Context())
			if err != nil {
				return err
			}
			writeListing(cmd.OutOrStdout(), view.Compose(resources, opts))
			return nil
		},
	}

	vf.register(cmd, true)
	return cmd
}
