package synth

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/floorplan/corridor"
	"github.com/katalvlaran/floorplan/opening"
	"github.com/katalvlaran/floorplan/placement"
	"github.com/katalvlaran/floorplan/roomgraph"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("synth: invalid option supplied")

// Options configures every stage of the pipeline.
type Options struct {
	Logger *slog.Logger
	// MinContact is the shortest shared wall treated as adjacency.
	MinContact float64
	Placement  []placement.Option
	Corridor   []corridor.Option
	Opening    []opening.Option

	err error
}

// Option configures a Synthesizer.
type Option func(*Options)

// DefaultOptions returns a discarding logger and stage defaults.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		MinContact: roomgraph.DefaultMinContact,
	}
}

// WithLogger sets the logger for the run and its placement stage.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMinContact overrides the adjacency contact threshold.
func WithMinContact(v float64) Option {
	return func(o *Options) {
		if !(v > 0) {
			o.err = fmt.Errorf("%w: min contact must be > 0, got %v", ErrOptionViolation, v)
			return
		}
		o.MinContact = v
	}
}

// WithPlacement appends placement options.
func WithPlacement(opts ...placement.Option) Option {
	return func(o *Options) { o.Placement = append(o.Placement, opts...) }
}

// WithCorridor appends corridor options.
func WithCorridor(opts ...corridor.Option) Option {
	return func(o *Options) { o.Corridor = append(o.Corridor, opts...) }
}

// WithOpening appends door and entrance options.
func WithOpening(opts ...opening.Option) Option {
	return func(o *Options) { o.Opening = append(o.Opening, opts...) }
}
