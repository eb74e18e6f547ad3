// Command floorplan synthesizes floor plan candidates from a room list,
// writes the best layout as GeoJSON and every candidate model as PLY, and
// prints a JSON report on stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/katalvlaran/floorplan/candidate"
	"github.com/katalvlaran/floorplan/config"
	"github.com/katalvlaran/floorplan/layout"
)

const (
	exitOK      = 0
	exitRun     = 1
	exitUsage   = 2
	exitConfig  = 3
	layoutFile  = "layout.geojson"
	modelPrefix = "model_"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("floorplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagSpec     string
		flagConfig   string
		flagSeed     int64
		flagN        int
		flagOut      string
		flagLevel    string
		flagFormat   string
		flagNoMesh   bool
		flagAllPlans bool
	)
	fs.StringVar(&flagSpec, "spec", "", "room list (YAML or JSON), required")
	fs.StringVar(&flagConfig, "config", "", "configuration file (YAML)")
	fs.Int64Var(&flagSeed, "seed", -1, "base seed; -1 uses the config seed, or the clock when that is 0")
	fs.IntVar(&flagN, "n", 0, "number of candidates (overrides config)")
	fs.StringVar(&flagOut, "out", ".", "output directory")
	fs.StringVar(&flagLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	fs.StringVar(&flagFormat, "log-format", "", "text or json (overrides config)")
	fs.BoolVar(&flagNoMesh, "no-mesh", false, "skip 3D models")
	fs.BoolVar(&flagAllPlans, "all", false, "also write layout_<i>.geojson for every candidate")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if flagSpec == "" {
		fmt.Fprintln(stderr, "floorplan: -spec is required")
		fs.Usage()
		return exitUsage
	}

	cfg := config.Defaults()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			fmt.Fprintln(stderr, err)
			return exitConfig
		}
	}
	if flagLevel != "" {
		cfg.Log.Level = flagLevel
	}
	if flagFormat != "" {
		cfg.Log.Format = flagFormat
	}
	if flagN > 0 {
		cfg.Candidates = flagN
	}
	if flagNoMesh {
		cfg.Mesh = false
	}
	switch {
	case flagSeed >= 0:
		cfg.Seed = flagSeed
	case cfg.Seed == 0:
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	logger, err := cfg.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	specs, err := config.LoadSpecs(flagSpec)
	if err != nil {
		logger.Error("room list", slog.Any("err", err))
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := candidate.Select(ctx, specs, cfg.SelectOptions(logger)...)
	if err != nil {
		logger.Error("synthesis failed", slog.Any("err", err))
		if errors.Is(err, layout.ErrConfiguration) {
			return exitConfig
		}
		return exitRun
	}
	if err = writeOutputs(flagOut, res, flagAllPlans); err != nil {
		logger.Error("write outputs", slog.Any("err", err))
		return exitRun
	}
	logger.Info("done",
		slog.String("generation", res.ID.String()),
		slog.Int("best", res.Best),
		slog.Duration("elapsed", time.Since(start)))

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(newReport(res)); err != nil {
		logger.Error("report", slog.Any("err", err))
		return exitRun
	}

	return exitOK
}

// report is the stdout summary; it adds per-candidate diagnostics and file
// names to the selection result.
type report struct {
	*candidate.Result
	Layout string            `json:"layout"`
	Models map[int]string    `json:"models,omitempty"`
	Diag   map[int]diagBlock `json:"diagnostics"`
}

type diagBlock struct {
	Structural int `json:"structural_score"`
	layout.Diagnostics
}

func newReport(res *candidate.Result) report {
	r := report{Result: res, Layout: layoutFile, Diag: map[int]diagBlock{}}
	for _, c := range res.Candidates {
		if c.Mesh != nil {
			if r.Models == nil {
				r.Models = map[int]string{}
			}
			r.Models[c.Index] = modelName(c.ModelID)
		}
		r.Diag[c.Index] = diagBlock{Structural: c.Layout.StructuralScore, Diagnostics: c.Layout.Diagnostics}
	}

	return r
}

func modelName(id string) string { return modelPrefix + id + ".ply" }

func writeOutputs(dir string, res *candidate.Result, all bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeLayout(filepath.Join(dir, layoutFile), res.BestCandidate().Layout); err != nil {
		return err
	}
	for _, c := range res.Candidates {
		if all {
			if err := writeLayout(filepath.Join(dir, fmt.Sprintf("layout_%d.geojson", c.Index)), c.Layout); err != nil {
				return err
			}
		}
		if c.Mesh == nil {
			continue
		}
		f, err := os.Create(filepath.Join(dir, modelName(c.ModelID)))
		if err != nil {
			return err
		}
		if err = c.Mesh.WritePLY(f); err != nil {
			f.Close()
			return err
		}
		if err = f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func writeLayout(path string, l *layout.Layout) error {
	data, err := layout.MarshalGeoJSON(l)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
