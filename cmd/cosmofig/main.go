// Command cosmofig regenerates the figures for the stochastic
// cosmology preprint: the w(z) amplitude overlay, the geometric noise
// cutoff S(z), and the 3D resilience valley. Each figure is written as
// PDF and PNG into the output directory.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"cosmofig/internal/figures"
)

func main() {
	var (
		outdir  = flag.String("outdir", "figures", "output directory for the generated figures")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if *verbose {
		gg.SetLogger(logger)
	}

	if err := figures.RenderAll(*outdir); err != nil {
		logger.Error("figure generation failed", "err", err)
		os.Exit(1)
	}
	logger.Info("all figures generated", "dir", *outdir)
}
