// Package config loads run configuration and room lists from YAML (JSON
// is accepted as a YAML subset) and turns them into package options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floorplan/candidate"
	"github.com/katalvlaran/floorplan/corridor"
	"github.com/katalvlaran/floorplan/opening"
	"github.com/katalvlaran/floorplan/placement"
	"github.com/katalvlaran/floorplan/roomgraph"
	"github.com/katalvlaran/floorplan/synth"
	"github.com/katalvlaran/floorplan/walls"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration. Zero sections keep defaults.
type Config struct {
	Seed       int64           `yaml:"seed" json:"seed"`
	Candidates int             `yaml:"candidates" json:"candidates"`
	Workers    int             `yaml:"workers" json:"workers"`
	Mesh       bool            `yaml:"mesh" json:"mesh"`
	Placement  PlacementConfig `yaml:"placement" json:"placement"`
	Adjacency  AdjacencyConfig `yaml:"adjacency" json:"adjacency"`
	Corridor   CorridorConfig  `yaml:"corridor" json:"corridor"`
	Openings   OpeningsConfig  `yaml:"openings" json:"openings"`
	Walls      WallsConfig     `yaml:"walls" json:"walls"`
	Log        LogConfig       `yaml:"log" json:"log"`
}

type PlacementConfig struct {
	PreferredBonus float64                    `yaml:"preferred_bonus" json:"preferred_bonus"`
	Priors         map[string]placement.Prior `yaml:"priors" json:"priors"`
}

type AdjacencyConfig struct {
	MinContact float64 `yaml:"min_contact" json:"min_contact"`
}

type CorridorConfig struct {
	Width           float64 `yaml:"width" json:"width"`
	SharedTolerance float64 `yaml:"shared_tolerance" json:"shared_tolerance"`
}

type OpeningsConfig struct {
	DoorWidth      float64 `yaml:"door_width" json:"door_width"`
	OpenWidth      float64 `yaml:"open_width" json:"open_width"`
	DoorDepth      float64 `yaml:"door_depth" json:"door_depth"`
	EntranceDepth  float64 `yaml:"entrance_depth" json:"entrance_depth"`
	MaxWallShare   float64 `yaml:"max_wall_share" json:"max_wall_share"`
	EntranceChoice int     `yaml:"entrance_choice" json:"entrance_choice"`
}

type WallsConfig struct {
	Height     float64 `yaml:"height" json:"height"`
	Thickness  float64 `yaml:"thickness" json:"thickness"`
	DoorHeight float64 `yaml:"door_height" json:"door_height"`
	Snap       float64 `yaml:"snap" json:"snap"`
}

type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level" json:"level"`
	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// Defaults mirrors the package defaults.
func Defaults() Config {
	po := placement.DefaultOptions()
	co := corridor.DefaultOptions()
	oo := opening.DefaultOptions()
	wo := walls.DefaultOptions()

	return Config{
		Candidates: candidate.DefaultCount,
		Mesh:       true,
		Placement:  PlacementConfig{PreferredBonus: po.PreferredBonus},
		Adjacency:  AdjacencyConfig{MinContact: roomgraph.DefaultMinContact},
		Corridor:   CorridorConfig{Width: co.Width, SharedTolerance: co.SharedTolerance},
		Openings: OpeningsConfig{
			DoorWidth:      oo.DoorWidth,
			OpenWidth:      oo.OpenWidth,
			DoorDepth:      oo.DoorDepth,
			EntranceDepth:  oo.EntranceDepth,
			MaxWallShare:   oo.MaxWallShare,
			EntranceChoice: oo.EntranceChoice,
		},
		Walls: WallsConfig{Height: wo.WallHeight, Thickness: wo.WallThickness, DoorHeight: wo.DoorHeight, Snap: wo.Snap},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes r over Defaults, rejecting unknown keys, and validates.
// An empty document yields Defaults.
func Parse(r io.Reader) (Config, error) {
	c := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks ranges that options would otherwise reject later.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}
	check(c.Candidates >= 1, "candidates must be >= 1, got %d", c.Candidates)
	check(c.Workers >= 0, "workers must be >= 0, got %d", c.Workers)
	check(c.Placement.PreferredBonus >= 0, "placement.preferred_bonus must be >= 0")
	for t, p := range c.Placement.Priors {
		check(p.MinArea >= 0 && p.MaxArea >= 0 && (p.MaxArea == 0 || p.MinArea <= p.MaxArea),
			"placement.priors.%s: bounds [%v, %v]", t, p.MinArea, p.MaxArea)
	}
	check(c.Adjacency.MinContact > 0, "adjacency.min_contact must be > 0")
	check(c.Corridor.Width > 0, "corridor.width must be > 0")
	check(c.Corridor.SharedTolerance >= 0, "corridor.shared_tolerance must be >= 0")
	check(c.Openings.DoorWidth > 0 && c.Openings.OpenWidth > 0, "openings widths must be > 0")
	check(c.Openings.DoorDepth > 0 && c.Openings.EntranceDepth > 0, "openings depths must be > 0")
	check(c.Openings.MaxWallShare > 0 && c.Openings.MaxWallShare <= 1, "openings.max_wall_share must be in (0,1]")
	check(c.Openings.EntranceChoice >= 1, "openings.entrance_choice must be >= 1")
	check(c.Walls.Height > 0 && c.Walls.Thickness > 0, "walls height and thickness must be > 0")
	check(c.Walls.DoorHeight > 0 && c.Walls.DoorHeight <= c.Walls.Height, "walls.door_height must be in (0, height]")
	check(c.Walls.Snap >= 0, "walls.snap must be >= 0")
	_, err := parseLevel(c.Log.Level)
	check(err == nil, "log.level %q unknown", c.Log.Level)
	check(c.Log.Format == "text" || c.Log.Format == "json", "log.format must be text or json, got %q", c.Log.Format)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// SynthOptions converts the 2D pipeline sections.
func (c Config) SynthOptions() []synth.Option {
	return []synth.Option{
		synth.WithMinContact(c.Adjacency.MinContact),
		synth.WithPlacement(
			placement.WithPreferredBonus(c.Placement.PreferredBonus),
			placement.WithPriors(c.Placement.Priors),
		),
		synth.WithCorridor(
			corridor.WithWidth(c.Corridor.Width),
			corridor.WithSharedTolerance(c.Corridor.SharedTolerance),
		),
		synth.WithOpening(
			opening.WithDoorWidth(c.Openings.DoorWidth),
			opening.WithOpenWidth(c.Openings.OpenWidth),
			opening.WithDepths(c.Openings.DoorDepth, c.Openings.EntranceDepth),
			opening.WithMaxWallShare(c.Openings.MaxWallShare),
			opening.WithEntranceChoice(c.Openings.EntranceChoice),
		),
	}
}

// WallOptions converts the walls section.
func (c Config) WallOptions() []walls.Option {
	return []walls.Option{
		walls.WithWallHeight(c.Walls.Height),
		walls.WithWallThickness(c.Walls.Thickness),
		walls.WithDoorHeight(c.Walls.DoorHeight),
		walls.WithSnap(c.Walls.Snap),
	}
}

// SelectOptions converts the whole configuration for candidate.Select.
func (c Config) SelectOptions(logger *slog.Logger) []candidate.Option {
	opts := []candidate.Option{
		candidate.WithLogger(logger),
		candidate.WithCount(c.Candidates),
		candidate.WithBaseSeed(c.Seed),
		candidate.WithMesh(c.Mesh),
		candidate.WithSynth(c.SynthOptions()...),
		candidate.WithWalls(c.WallOptions()...),
	}
	if c.Workers > 0 {
		opts = append(opts, candidate.WithWorkers(c.Workers))
	}

	return opts
}

// Logger builds a slog logger writing to w per the log section.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	ho := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	}

	return slog.New(slog.NewTextHandler(w, ho)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText(bytes.TrimSpace([]byte(s))); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return lvl, nil
}
