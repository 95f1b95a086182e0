package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linkedlens/linkedlens/internal/db"
	"github.com/linkedlens/linkedlens/internal/scraper"
	"github.com/linkedlens/linkedlens/pkg/config"
	"github.com/linkedlens/linkedlens/pkg/logging"
)

func main() {
	urlsFlag := flag.String("urls", "", "comma-separated profile URLs to scrape")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	if *urlsFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: scrape -urls <url>[,<url>...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting LinkedLens batch scraper")

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close()

	profiles := db.NewProfileRepository(db.NewRepository(database.DB))
	source := scraper.NewSimulated(cfg.Scraper)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Per-profile failures are logged and skipped so one bad profile
	// doesn't abort the whole batch
	scraped := 0
	for _, url := range strings.Split(*urlsFlag, ",") {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}

		profile, err := source.ScrapeProfile(ctx, url)
		if err != nil {
			logger.Error("Scrape failed", zap.String("url", url), zap.Error(err))
			continue
		}
		if err := profiles.Save(ctx, profile); err != nil {
			logger.Error("Save failed", zap.String("url", url), zap.Error(err))
			continue
		}
		scraped++
	}

	logger.Info("Batch scrape finished", zap.Int("profiles", scraped))
}
