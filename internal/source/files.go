package source

import (
	"context"
	"fmt"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"golang.org/x/sync/errgroup"
)

type files struct {
	paths []string
}

// Files returns a source that reads one or more YAML catalogs. Catalogs are
// read concurrently and concatenated in path order.
func Files(paths ...string) Source {
	return files{paths: append([]string(nil), paths...)}
}

func (f files) Fetch(ctx context.Context) ([]resource.Resource, error) {
	parts := make([][]resource.Resource, len(f.paths))

	g, gCtx := errgroup.WithContext(ctx)
	for i, p := range f.paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rs, err := resource.Load(p)
			if err != nil {
				return err
			}
			parts[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := []resource.Resource{}
	for _, rs := range parts {
		all = append(all, rs...)
	}
	if err := resource.ValidateAll(all); err != nil {
		return nil, fmt.Errorf("merging catalogs: %w", err)
	}
	return all, nil
}
