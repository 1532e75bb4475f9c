// Package main provides the fetcher command-line tool that downloads article
// revision histories into the year/month layout the exporter consumes.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"wikirev/internal/config"
	"wikirev/internal/fetcher"
	"wikirev/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	dataDir := flag.String("data-dir", "", "Directory to write article revision directories")
	endpoint := flag.String("endpoint", "", "Special:Export base URL (overrides config)")
	articles := flag.String("articles", "", "Comma-separated article titles (overrides config)")

	flag.Parse()

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

	if *dataDir != "" {
		cfg.Export.DataDir = *dataDir
	}

	if *endpoint != "" {
		cfg.Fetch.Endpoint = *endpoint
	}

	if *articles != "" {
		cfg.Fetch.Articles = nil
		for _, title := range strings.Split(*articles, ",") {
			if title = strings.TrimSpace(title); title != "" {
				cfg.Fetch.Articles = append(cfg.Fetch.Articles, title)
			}
		}
	}

	if cfg.Export.DataDir == "" {
		log.Fatal("❌ Please provide -data-dir (or export.data_dir in the config file)")
	}

	if len(cfg.Fetch.Articles) == 0 {
		log.Fatal("❌ Please provide -articles (or fetch.articles in the config file)")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	fmt.Println("🕷️  Wikipedia Revision Fetcher")
	fmt.Printf("Endpoint: %s\n", cfg.Fetch.Endpoint)
	fmt.Printf("Retry policy: max %d attempts, %.1fx backoff\n",
		cfg.Fetch.Retry.MaxAttempts, cfg.Fetch.Retry.BackoffMultiplier)
	fmt.Println()

	logg := logger.NewLogger(cfg.Logging.Level)
	client := fetcher.NewClient(&cfg.Fetch, logg)

	failed := 0

	for i, title := range cfg.Fetch.Articles {
		fmt.Printf("📦 Article %d/%d: %s\n", i+1, len(cfg.Fetch.Articles), title)

		count, err := client.FetchArticle(title, cfg.Export.DataDir)
		if err != nil {
			fmt.Printf("❌ Failed: %v\n", err)

			failed++

			continue
		}

		fmt.Printf("✅ Wrote %d revision files\n", count)
	}

	if failed > 0 {
		log.Fatalf("❌ %d of %d articles failed\n", failed, len(cfg.Fetch.Articles))
	}

	fmt.Println("\n✨ Fetching complete!")
}
