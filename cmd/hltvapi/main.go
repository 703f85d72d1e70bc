package main

import (
	"context"
	"flag"
	"fmt"
	"hltvapi-backend/internal/components/telemetry"
	"hltvapi-backend/internal/scrapers/hltv"
	"hltvapi-backend/internal/service"
	"hltvapi-backend/lib/serviceutil"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging of every fetch.")
	flag.Parse()

	telemetry.InitSlog(*verbose)

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("load .env", err)
	}

	ctx := serviceutil.SignalContext()

	cfg, err := ReadConfig(os.Getenv("HLTVAPI_CONFIG"))
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	providers, err := telemetry.Setup(ctx, "hltvapi", cfg.Telemetry)
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}

	err = run(ctx, cfg)

	shutdownErr := providers.Shutdown(context.Background())
	if shutdownErr != nil {
		slog.Warn("shutdown telemetry", "err", shutdownErr.Error())
	}
	if err != nil {
		serviceutil.Fatal("run", err)
	}
}

// run serves the api until ctx is done, the telemetry providers outlive it.
func run(ctx context.Context, cfg Config) error {
	tel := telemetry.SlogAPI{}
	telemetry.InstrumentPerfStats(ctx, tel)

	fetcher := hltv.NewHttpFetcher(hltv.HttpFetcherOptions{
		UserAgent: cfg.Hltv.UserAgent,
		Timeout:   time.Duration(cfg.Hltv.TimeoutSeconds) * time.Second,
	}, tel)
	scraper, err := hltv.NewScraper(fetcher, cfg.Hltv.BaseUrl, tel)
	if err != nil {
		return fmt.Errorf("init scraper: %w", err)
	}

	err = serviceutil.StartHttpServer(ctx, cfg.Port, service.NewService(scraper, tel).Handler())
	if err != nil {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}
