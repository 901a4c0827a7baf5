package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

type categoryCount struct {
	Category resource.Category `json:"category"`
	Count    int               `json:"count"`
}

func newCategoriesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with resource counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := loadResources(cmd.Context())
			if err != nil {
				return err
			}
			counts := countByCategory(resources)

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(counts)
			}
			writeCategoryCounts(cmd.OutOrStdout(), counts, len(resources))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// countByCategory returns a count for every category in display order,
// including empty ones.
func countByCategory(resources []resource.Resource) []categoryCount {
	counts := resource.CategoryCounts(resources)
	out := make([]categoryCount, 0, len(resource.Categories()))
	for _, c := range resource.Categories() {
		out = append(out, categoryCount{Category: c, Count: counts[c]})
	}
	return out
}

func writeCategoryCounts(w io.Writer, counts []categoryCount, total int) {
	for _, cc := range counts {
		n := fmt.Sprintf("%3d", cc.Count)
		if cc.Count == 0 {
			n = color.HiBlackString(n)
		}
		fmt.Fprintf(w, "  %-14s %s\n", color.CyanString(cc.Category.String()), n)
	}
	fmt.Fprintf(w, "  %-14s %3d\n", "All", total)
}
