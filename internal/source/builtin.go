package source

import (
	"context"
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

//go:embed data/resources.yml
var builtinYAML []byte

var (
	builtinOnce      sync.Once
	builtinResources []resource.Resource
	builtinErr       error
)

type builtin struct{}

// Builtin returns the catalog compiled into the binary.
func Builtin() Source { return builtin{} }

func (builtin) Fetch(ctx context.Context) ([]resource.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builtinOnce.Do(func() {
		builtinResources, builtinErr = resource.Parse(builtinYAML)
		if builtinErr != nil {
			builtinErr = fmt.Errorf("built-in catalog: %w", builtinErr)
		}
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return slices.Clone(builtinResources), nil
}
