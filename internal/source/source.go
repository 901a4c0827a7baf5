// Package source supplies the resource catalog to the loader.
package source

import (
	"context"
	"slices"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

// Source returns the full, already-validated resource list.
type Source interface {
	Fetch(ctx context.Context) ([]resource.Resource, error)
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context) ([]resource.Resource, error)

// Fetch implements Source.
func (f Func) Fetch(ctx context.Context) ([]resource.Resource, error) {
	return f(ctx)
}

type static struct {
	resources []resource.Resource
}

// Static returns a source serving a fixed list.
func Static(resources []resource.Resource) Source {
	return static{resources: slices.Clone(resources)}
}

func (s static) Fetch(ctx context.Context) ([]resource.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(s.resources)
	if out == nil {
		out = []resource.Resource{}
	}
	return out, nil
}
