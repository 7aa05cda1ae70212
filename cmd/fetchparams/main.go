package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/worleycaves/internal/params"
)

func main() {
	var (
		src = flag.String("src", "", "parameters file address (path, https://, git::, s3::)")
		out = flag.String("o", "./caves.yaml", "output file path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *src == "" {
		log.Error("source address required")
		os.Exit(2)
	}
	if *out == "" {
		log.Error("output file path required")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("start downloading params", "src", *src)

	s, err := params.Fetch(ctx, *src, *out)
	if err != nil {
		log.Error("fetch params", "error", err)
		os.Exit(1)
	}

	log.Info("done downloading params",
		"path", *out,
		"cutoff", s.Cutoff,
		"warp", s.WarpAmplifier,
		"ease_in", s.EaseInDepth,
		"lava_depth", s.LavaDepth,
		"blacklist", s.BlacklistedDimensions,
	)
}
