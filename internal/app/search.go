package app

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

type searchResult struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Category     resource.Category `json:"category"`
	Duration     int               `json:"duration"`
	Tags         []string          `json:"tags,omitempty"`
	DateUploaded string            `json:"date_uploaded"`
}

func newSearchCmd() *cobra.Command {
	var (
		vf      viewFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search resources by title or tags",
		Long: `Search the catalog for resources whose title or any tag contains the
query (case-insensitive). Use --category to narrow results further.

Examples:
  resourcectl search sleep
  resourcectl search mindful --category Podcasts
  resourcectl search stress --sort duration-shortest --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vf.search = args[0]
			opts, err := vf.options(cfg.DefaultView())
			if err != nil {
				return err
			}

			resources, err := loadResources(cmd.Context())
			if err != nil {
				return err
			}
			m := view.Compose(resources, opts)

			if jsonOut {
				results := make([]searchResult, 0, len(m.Items))
				for _, r := range m.Items {
					results = append(results, searchResult{
						ID:           r.ID,
						Title:        r.Title,
						Category:     r.Category,
						Duration:     r.Duration,
						Tags:         r.Tags,
						DateUploaded: r.DateUploaded,
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			writeListing(cmd.OutOrStdout(), m)
			return nil
		},
	}

	vf.register(cmd, false)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
