package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/OCharnyshevich/worleycaves/internal/config"
	"github.com/OCharnyshevich/worleycaves/internal/params"
	"github.com/OCharnyshevich/worleycaves/internal/report"
	"github.com/OCharnyshevich/worleycaves/internal/world"
	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
	"github.com/OCharnyshevich/worleycaves/pkg/world/gen"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML run configuration file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator: default or flat")
	flag.IntVar(&cfg.FlatHeight, "flat-height", cfg.FlatHeight, "grass level of the flat generator")
	flag.IntVar(&cfg.Dimension, "dimension", cfg.Dimension, "dimension ID, checked against the blacklist")
	flag.StringVar(&cfg.ParamsPath, "params", cfg.ParamsPath, "cave parameters file (default: built-in)")
	flag.IntVar(&cfg.MinChunkX, "min-x", cfg.MinChunkX, "lowest chunk X")
	flag.IntVar(&cfg.MinChunkZ, "min-z", cfg.MinChunkZ, "lowest chunk Z")
	flag.IntVar(&cfg.MaxChunkX, "max-x", cfg.MaxChunkX, "highest chunk X")
	flag.IntVar(&cfg.MaxChunkZ, "max-z", cfg.MaxChunkZ, "highest chunk Z")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "chunks generated in parallel")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	flag.BoolVar(&cfg.Trace, "trace", cfg.Trace, "write every carve decision to decisions.jsonl.zst")
	flag.IntVar(&cfg.SliceY, "slice-y", cfg.SliceY, "print an ASCII slice of the region at this Y (-1 = off)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
		log.Info("loaded config from file", "path", *configPath)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("cavegen failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	settings, err := params.Load(cfg.ParamsPath)
	if err != nil {
		return err
	}
	p := settings.Caves()

	out, err := report.New(cfg.OutDir, log)
	if err != nil {
		return err
	}

	var trace *report.Trace
	if cfg.Trace {
		if trace, err = out.CreateTrace(); err != nil {
			return err
		}
		defer trace.Close()
	}
	collector := report.NewCollector(trace)

	carver := caves.Observe(
		caves.Select(cfg.Dimension, settings.BlacklistedDimensions,
			caves.NewWorleyCarver(p, cfg.Seed),
			caves.NewNoiseCaves(cfg.Seed)),
		collector.Observe,
	)

	var g gen.Generator
	switch cfg.GeneratorType {
	case "flat":
		g = gen.NewFlatGenerator(cfg.FlatHeight, carver, p.LavaDepth)
	default:
		g = gen.NewDefaultGenerator(cfg.Seed, carver, p.LavaDepth)
	}

	region := world.Region{MinX: cfg.MinChunkX, MinZ: cfg.MinChunkZ, MaxX: cfg.MaxChunkX, MaxZ: cfg.MaxChunkZ}
	positions := region.Chunks()
	log.Info("generating region",
		"seed", cfg.Seed,
		"generator", cfg.GeneratorType,
		"dimension", cfg.Dimension,
		"worley", !slices.Contains(settings.BlacklistedDimensions, cfg.Dimension),
		"chunks", len(positions),
		"cutoff", p.Cutoff,
	)

	w := world.NewWorld(g)
	if err := world.NewRunner(w, cfg.Workers, log).Run(ctx, region); err != nil {
		return err
	}

	stats := collector.Stats(positions, w.Chunk)
	if err := out.WriteStats(stats); err != nil {
		return err
	}
	log.Info("caves carved", report.Summarize(stats).LogAttrs()...)

	if trace != nil {
		if err := trace.Close(); err != nil {
			return err
		}
		log.Info("trace written", "decisions", trace.Len())
	}

	if cfg.SliceY >= 0 {
		slice, err := report.RenderSlice(w, region, cfg.SliceY)
		if err != nil {
			return err
		}
		fmt.Print(slice)
	}
	return nil
}
