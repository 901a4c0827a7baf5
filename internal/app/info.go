package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show the full record of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := loadResources(cmd.Context())
			if err != nil {
				return err
			}
			r := resource.ByID(resources, args[0])
			if r == nil {
				return fmt.Errorf("resource %q not found", args[0])
			}

			header("Resource: %s", r.ID)
			printField("title", r.Title)
			printField("category", r.Category.String())
			printField("duration", view.DurationLong(r.Duration))
			printField("uploaded", view.DateLabel(*r))
			if len(r.Tags) > 0 {
				printField("tags", strings.Join(r.Tags, ", "))
			}
			if r.Thumbnail != "" {
				printField("thumbnail", r.Thumbnail)
			}
			if r.CreatedAt != "" {
				printField("created_at", r.CreatedAt)
			}
			if r.Description != "" {
				fmt.Println()
				fmt.Println("  " + r.Description)
			}
			return nil
		},
	}
}
