package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/okempf/boardbatch/internal/common"
	"github.com/okempf/boardbatch/internal/export"
	"github.com/okempf/boardbatch/internal/match"
	"github.com/okempf/boardbatch/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		ordersDir = flag.String("orders", "", "directory with order-details PDFs (required)")
		labelsDir = flag.String("labels", "", "directory with shipping-label PDFs (optional)")
		outDir    = flag.String("out", "", "output directory (defaults next to --orders)")
	)
	flag.Parse()

	if *ordersDir == "" {
		printError("Error: --orders is required\n")
		os.Exit(1)
	}
	if *outDir == "" {
		*outDir = filepath.Join(filepath.Dir(*ordersDir), "boardbatch-out")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	proc := pipeline.NewProcessor(logger, match.Config{NameThreshold: cfg.Match.NameThreshold})
	res, err := proc.RunDirs(ctx, *ordersDir, *labelsDir)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	artifacts, err := export.BuildArtifacts(res.Orders, res.Expanded)
	if err != nil {
		logger.Error("artifact build failed", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("create output dir", "dir", *outDir, "error", err)
		os.Exit(1)
	}
	for name, data := range artifacts {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logger.Error("write artifact", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("wrote artifact", "path", path, "bytes", len(data))
	}

	logger.Info("batch complete",
		"orders", len(res.Orders),
		"expanded", len(res.Expanded),
		"labels", len(res.Labels),
		"out", *outDir,
	)
}
