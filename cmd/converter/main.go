package main

import (
	"context"
	"log"
	"os"

	"github.com/lenscatalog/xml2xlsx/config"
	"github.com/lenscatalog/xml2xlsx/internal/delivery/cli"
	"github.com/lenscatalog/xml2xlsx/internal/infrastructure/skiplog"
	"github.com/lenscatalog/xml2xlsx/internal/infrastructure/xlsx"
	"github.com/lenscatalog/xml2xlsx/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Processing XML files from: %s", cfg.Paths.InputDir)
	log.Printf("Output to: %s", cfg.Paths.OutputDir)
	log.Printf("Large/skipped files logged to: %s", cfg.Paths.SkipLogPath())

	// Initialize infrastructure dependencies
	skips := skiplog.New(cfg.Paths.SkipLogPath())
	writer := xlsx.NewWriter()

	// Initialize usecase layer
	estimator := usecase.NewSizeEstimator(usecase.SizeEstimatorConfig{
		EarlyExitThreshold: cfg.Limits.EstimatorEarlyExit,
	})
	converter := usecase.NewConverter(estimator, skips, usecase.ConverterConfig{
		MaxUPCCount:  cfg.Limits.MaxUPCCount,
		MaxRows:      cfg.Limits.MaxRows,
		MaxFileBytes: cfg.Limits.MaxFileBytes,
	})

	// Run the batch
	runner := cli.NewRunner(converter, writer, skips, cli.RunnerConfig{
		InputDir:    cfg.Paths.InputDir,
		OutputDir:   cfg.Paths.OutputDir,
		SkipLogPath: cfg.Paths.SkipLogPath(),
	})

	summary, err := runner.Run(context.Background())
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}

	log.Printf("Done: %d processed, %d saved, %d skipped",
		summary.Processed, summary.Saved, summary.Skipped)
}

func init() {
	// Plain timestamped progress lines on stdout
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)
}
