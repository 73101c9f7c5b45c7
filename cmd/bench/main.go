package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"coordbench/pkg/bench"
	"coordbench/pkg/config"
	"coordbench/pkg/geo"
	"coordbench/pkg/logger"
	osmsource "coordbench/pkg/osm"
	"coordbench/pkg/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("Benchmark failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	envFile := fs.String("env", ".env", "Path to .env file (ignored if missing)")
	n := fs.Int("n", 0, "Number of point pairs per system")
	out := fs.String("out", "", "CSV output path")
	plot := fs.Bool("plot", false, "Also write an XLSX workbook with a bar chart next to the CSV")
	systems := fs.String("systems", "", "Comma-separated systems: "+strings.Join(bench.Names(), ","))
	workers := fs.Int("workers", 0, "Concurrent chunks per batch")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time-based)")
	osmFile := fs.String("osm", "", "Path to .osm.pbf file; spherical systems use its nodes")
	bbox := fs.String("bbox", "", "Bounding box filter for --osm: minLat,minLng,maxLat,maxLng")
	osmLimit := fs.Int("osm-limit", 0, "Maximum number of OSM nodes to load")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: console, json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		return err
	}

	// Flags override file and environment, but only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Bench.N = *n
		case "out":
			cfg.Bench.Out = *out
		case "plot":
			cfg.Bench.Plot = *plot
		case "systems":
			cfg.Bench.Systems = config.SplitList(*systems)
		case "workers":
			cfg.Bench.Workers = *workers
		case "seed":
			cfg.Bench.Seed = *seed
		case "osm":
			cfg.OSM.File = *osmFile
		case "bbox":
			cfg.OSM.BBox = *bbox
		case "osm-limit":
			cfg.OSM.Limit = *osmLimit
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})

	logger.Initialize(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.New().String()
	started := time.Now()
	if cfg.Bench.Seed == 0 {
		cfg.Bench.Seed = uint64(started.UnixNano())
	}
	lg := log.With().Str("run_id", runID).Logger()

	source := "random"
	var samples []geo.LatLng
	if cfg.OSM.File != "" {
		samples, err = loadSamples(ctx, cfg.OSM)
		if err != nil {
			return err
		}
		source = cfg.OSM.File
	}

	lg.Info().
		Int("n", cfg.Bench.N).
		Strs("systems", cfg.Bench.Systems).
		Int("workers", cfg.Bench.Workers).
		Uint64("seed", cfg.Bench.Seed).
		Str("source", source).
		Msg("Starting benchmark")

	runner := &bench.Runner{
		Workers: cfg.Bench.Workers,
		Seed:    cfg.Bench.Seed,
		Samples: samples,
	}
	results, err := runner.Run(ctx, cfg.Bench.Systems, cfg.Bench.N)
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	if err := report.SaveCSV(cfg.Bench.Out, results); err != nil {
		return err
	}
	lg.Info().Str("path", cfg.Bench.Out).Msg("Wrote CSV")

	if cfg.Bench.Plot {
		chartPath := strings.TrimSuffix(cfg.Bench.Out, filepath.Ext(cfg.Bench.Out)) + ".xlsx"
		meta := report.RunMeta{
			RunID:     runID,
			StartedAt: started,
			N:         cfg.Bench.N,
			Workers:   cfg.Bench.Workers,
			Seed:      cfg.Bench.Seed,
			Source:    source,
		}
		if err := report.SaveChart(chartPath, results, meta); err != nil {
			return err
		}
		lg.Info().Str("path", chartPath).Msg("Wrote chart")
	}

	report.PrintSummary(stdout, results)
	lg.Info().Dur("elapsed", time.Since(started).Round(time.Millisecond)).Msg("Done")
	return nil
}

func loadSamples(ctx context.Context, cfg config.OSMConfig) ([]geo.LatLng, error) {
	opts := osmsource.LoadOptions{Limit: cfg.Limit}
	if cfg.BBox != "" {
		b, err := osmsource.ParseBBox(cfg.BBox)
		if err != nil {
			return nil, err
		}
		opts.BBox = b
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("open osm file: %w", err)
	}
	defer f.Close()

	log.Info().Str("path", cfg.File).Msg("Loading OSM nodes")
	points, err := osmsource.LoadPoints(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("load osm points: %w", err)
	}
	return points, nil
}
