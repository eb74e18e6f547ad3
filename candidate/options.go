package candidate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/floorplan/synth"
	"github.com/katalvlaran/floorplan/walls"
)

// DefaultCount is the number of candidates generated per selection.
const DefaultCount = 3

// MaxSeed bounds derived seeds to [0, MaxSeed].
const MaxSeed = 1_000_000

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("candidate: invalid option supplied")

// ErrNoCandidates is returned when every candidate came back empty.
var ErrNoCandidates = errors.New("candidate: no candidate produced a layout")

// Options configures Select.
type Options struct {
	Logger   *slog.Logger
	Count    int
	Seeds    []int64
	BaseSeed int64
	Workers  int
	// Mesh enables the 3D build for every candidate.
	Mesh  bool
	Synth []synth.Option
	Walls []walls.Option

	err error
}

// Option configures Select.
type Option func(*Options)

// DefaultOptions returns three meshed candidates on GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Count:   DefaultCount,
		Workers: runtime.GOMAXPROCS(0),
		Mesh:    true,
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCount sets how many candidates to generate when no seeds are given.
func WithCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: count must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Count = n
	}
}

// WithSeeds fixes the seed of every candidate; the count follows len(seeds).
func WithSeeds(seeds ...int64) Option {
	return func(o *Options) {
		if len(seeds) == 0 {
			o.err = fmt.Errorf("%w: empty seed list", ErrOptionViolation)
			return
		}
		o.Seeds = append([]int64(nil), seeds...)
	}
}

// WithBaseSeed sets the seed from which candidate seeds are derived.
func WithBaseSeed(s int64) Option {
	return func(o *Options) { o.BaseSeed = s }
}

// WithWorkers bounds concurrent candidates.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithMesh toggles the 3D build.
func WithMesh(on bool) Option {
	return func(o *Options) { o.Mesh = on }
}

// WithSynth appends pipeline options.
func WithSynth(opts ...synth.Option) Option {
	return func(o *Options) { o.Synth = append(o.Synth, opts...) }
}

// WithWalls appends 3D build options.
func WithWalls(opts ...walls.Option) Option {
	return func(o *Options) { o.Walls = append(o.Walls, opts...) }
}
