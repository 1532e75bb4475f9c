// Package main provides the exporter command-line tool that converts revision
// XML trees into per-article parquet files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"wikirev/internal/config"
	"wikirev/internal/logger"
	"wikirev/internal/runner"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	dataDir := flag.String("data-dir", "", "Directory containing article revision directories")
	outputDir := flag.String("output-dir", "", "Directory to save parquet files (default DataFrames)")
	batchSize := flag.Int("batch-size", 0, "Number of files to process in each batch (default 1000)")
	includeText := flag.Bool("include-text", false, "Include full text content in the output (significantly increases file size)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	var cfg *config.Config

	var err error

	if *configFile != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", *configFile)

		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	// CLI flags override the file values.
	if *dataDir != "" {
		cfg.Export.DataDir = *dataDir
	}

	if *outputDir != "" {
		cfg.Export.OutputDir = *outputDir
	}

	if *batchSize > 0 {
		cfg.Export.BatchSize = *batchSize
	}

	if *includeText {
		cfg.Export.IncludeText = true
	}

	if cfg.Export.DataDir == "" {
		log.Fatal("❌ Please provide -data-dir (or export.data_dir in the config file)")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	printHeader(cfg)

	logg := logger.NewLogger(cfg.Logging.Level)

	totals, err := runner.NewRunner(cfg, logg).Run()
	if err != nil {
		log.Fatalf("❌ Export failed: %v\n", err)
	}

	fmt.Printf("\n✨ Export complete! %d articles written, %d skipped, %d failed\n",
		totals.Written, totals.Skipped, totals.Failed)

	if totals.Failed > 0 {
		os.Exit(1)
	}
}

func printHeader(cfg *config.Config) {
	mode := "text length only"
	if cfg.Export.IncludeText {
		mode = "text content"
	}

	fmt.Println("📚 Wikipedia Revision Exporter")
	fmt.Printf("Data directory: %s\n", cfg.Export.DataDir)
	fmt.Printf("Output directory: %s\n", cfg.Export.OutputDir)
	fmt.Printf("Batch size: %d\n", cfg.Export.BatchSize)
	fmt.Printf("Processing with %s\n", mode)
	fmt.Println()
}

func printUsage() {
	fmt.Println("Usage: ./bin/exporter [OPTIONS]")
	fmt.Println()
	fmt.Println("Converts <data-dir>/<article>/<year>/<month>/*.xml revision files")
	fmt.Println("into one parquet file per article under -output-dir.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/exporter -data-dir data/revisions")
	fmt.Println("  ./bin/exporter -data-dir data/revisions -output-dir DataFrames -batch-size 500")
	fmt.Println("  ./bin/exporter -config configs/exporter.yaml -include-text")
}
