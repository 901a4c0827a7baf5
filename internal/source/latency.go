package source

import (
	"context"
	"time"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

type delayed struct {
	src   Source
	delay time.Duration
}

// WithLatency wraps src so every Fetch waits d before delegating, standing in
// for a network round trip. The wait ends early if ctx is cancelled.
func WithLatency(src Source, d time.Duration) Source {
	if d <= 0 {
		return src
	}
	return delayed{src: src, delay: d}
}

func (d delayed) Fetch(ctx context.Context) ([]resource.Resource, error) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}
	return d.src.Fetch(ctx)
}
