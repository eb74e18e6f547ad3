package placement

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultPreferredBonus is added to the score of a candidate on a preferred side.
const DefaultPreferredBonus = 100.0

// Prior clamps the requested area of one room type. Zero bounds are ignored.
type Prior struct {
	MinArea float64 `yaml:"min_area" json:"min_area"`
	MaxArea float64 `yaml:"max_area" json:"max_area"`
}

// Clamp applies the bounds to area.
func (p Prior) Clamp(area float64) float64 {
	if p.MinArea > 0 && area < p.MinArea {
		area = p.MinArea
	}
	if p.MaxArea > 0 && area > p.MaxArea {
		area = p.MaxArea
	}

	return area
}

// Option configures Synthesize.
type Option func(*Options)

// Options holds placement parameters.
type Options struct {
	// Logger receives one debug record per room and a warning per failure.
	Logger *slog.Logger
	// PreferredBonus rewards candidates on compactness-preferred sides.
	PreferredBonus float64
	// Priors clamps areas per room type.
	Priors map[string]Prior

	err error
}

// DefaultOptions returns a discarding logger, the default bonus and no priors.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		PreferredBonus: DefaultPreferredBonus,
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

// WithPreferredBonus overrides the preferred-side bonus; it must be >= 0.
func WithPreferredBonus(b float64) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: preferred bonus must be >= 0, got %v", ErrOptionViolation, b)
			return
		}
		o.PreferredBonus = b
	}
}

// WithPriors installs per-type area bounds.
func WithPriors(p map[string]Prior) Option {
	return func(o *Options) {
		for t, pr := range p {
			if pr.MinArea < 0 || pr.MaxArea < 0 || (pr.MaxArea > 0 && pr.MinArea > pr.MaxArea) {
				o.err = fmt.Errorf("%w: prior for %q has bounds [%v, %v]", ErrOptionViolation, t, pr.MinArea, pr.MaxArea)
				return
			}
		}
		o.Priors = p
	}
}
