package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/backend"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/cache"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/cli"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/dashboard"
	apphttp "github.com/Anton-Biryukov-Mig/course-work-1/internal/http"
	applog "github.com/Anton-Biryukov-Mig/course-work-1/internal/log"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/quotes"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/rates"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/source/file"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	result, err := backend.NewFactory(logger).Create(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}
	}()

	assembler := &dashboard.Assembler{
		Rates:  rates.NewClient(cfg.RatesBaseURL),
		Quotes: quotes.NewClient(cfg.QuotesBaseURL, cfg.QuotesAPIKey),
	}

	dashboardCache := cache.NewLRUCache[dashboard.Summary](cfg.CacheSize, cfg.CacheTTL)
	cacheManager := cache.NewManager()
	cacheManager.Register(dashboardCache)
	cacheManager.StartCleanup(time.Minute)
	defer cacheManager.Stop()

	httpLogger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP)
	server := apphttp.NewServer(result.Transactions, file.New(cfg.DataDir), assembler, dashboardCache, httpLogger)
	srv := server.NewHTTPServer(":" + cfg.Port)

	shutdownCtx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(stopCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	g, _ := errgroup.WithContext(shutdownCtx)
	g.Go(func() error {
		logger.Info("Starting finreport server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-shutdownCtx.Done()
		<-done
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
