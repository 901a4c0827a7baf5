// Package loader tracks the asynchronous retrieval of the resource catalog.
package loader

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/source"
	"go.uber.org/zap"
)

// DefaultErrorMessage is reported when a failure carries no message.
const DefaultErrorMessage = "Failed to fetch resources"

// State is a snapshot of the loader.
type State struct {
	Resources []resource.Resource `json:"resources"`
	Loading   bool                `json:"loading"`
	Err       string              `json:"error,omitempty"`
}

// Failed reports whether the last load ended in an error.
func (s State) Failed() bool { return s.Err != "" }

// Loader fetches resources from a Source and records loading/error state.
// Overlapping loads are not coalesced; whichever finishes last wins.
type Loader struct {
	src      source.Source
	log      *zap.Logger
	onChange func(State)

	mu    sync.Mutex
	state State
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report load failures.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithOnChange registers a callback invoked after every state transition.
// It runs on the goroutine that performed the transition.
func WithOnChange(fn func(State)) Option {
	return func(ld *Loader) { ld.onChange = fn }
}

// New returns a loader in its initial state: no resources, loading, no error.
func New(src source.Source, opts ...Option) *Loader {
	l := &Loader{
		src:   src,
		log:   zap.NewNop(),
		state: State{Resources: []resource.Resource{}, Loading: true},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns a copy of the current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Load fetches the catalog and commits the outcome. Failures are recorded in
// the returned state rather than returned; resources from the previous
// successful load are kept.
func (l *Loader) Load(ctx context.Context) State {
	l.update(func(s *State) {
		s.Loading = true
		s.Err = ""
	})

	resources, err := l.fetch(ctx)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = DefaultErrorMessage
		}
		l.log.Error("error fetching resources", zap.Error(err))
		return l.update(func(s *State) {
			s.Err = msg
			s.Loading = false
		})
	}

	l.log.Debug("resources loaded", zap.Int("count", len(resources)))
	return l.update(func(s *State) {
		s.Resources = resources
		s.Loading = false
	})
}

// Start runs Load on a new goroutine. The returned channel receives the
// committed state and is then closed.
func (l *Loader) Start(ctx context.Context) <-chan State {
	done := make(chan State, 1)
	go func() {
		defer close(done)
		done <- l.Load(ctx)
	}()
	return done
}

// Refetch resets to the loading state and repeats the load in the background.
func (l *Loader) Refetch(ctx context.Context) <-chan State {
	return l.Start(ctx)
}

func (l *Loader) fetch(ctx context.Context) (resources []resource.Resource, err error) {
	defer func() {
		if r := recover(); r != nil {
			resources = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	resources, err = l.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []resource.Resource{}
	}
	return resources, nil
}

func (l *Loader) update(fn func(*State)) State {
	l.mu.Lock()
	fn(&l.state)
	snap := l.snapshot()
	l.mu.Unlock()

	if l.onChange != nil {
		l.onChange(snap)
	}
	return snap
}

// snapshot must be called with mu held.
func (l *Loader) snapshot() State {
	s := l.state
	s.Resources = slices.Clone(l.state.Resources)
	if s.Resources == nil {
		s.Resources = []resource.Resource{}
	}
	return s
}
