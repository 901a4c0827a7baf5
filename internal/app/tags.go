package app

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

type tagEntry struct {
	Name  string `json:"tag"`
	Count int    `json:"count"`
}

func newTagsCmd() *cobra.Command {
	var (
		category string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with resource counts",
		Long: `List every tag in the catalog with the number of resources carrying it,
most used first. Any tag can be passed to 'resourcectl search'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := resource.ParseSelection(category)
			if err != nil {
				return fmt.Errorf("--category: %w", err)
			}
			resources, err := loadResources(cmd.Context())
			if err != nil {
				return err
			}
			entries := sortedTags(resource.TagCounts(resource.FilterResources(resources, "", sel)))

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			writeTags(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only count tags of this category")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

// sortedTags orders by count descending, then name ascending.
func sortedTags(counts map[string]int) []tagEntry {
	entries := make([]tagEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, tagEntry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func writeTags(w io.Writer, entries []tagEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No tags found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %-24s %s\n",
			color.CyanString(e.Name),
			color.HiBlackString("(%d)", e.Count),
		)
	}
	fmt.Fprintf(w, "\n%d tags\n", len(entries))
}
