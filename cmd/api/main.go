package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/doc-analysis-client/config"
	analysishttp "github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/http"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/service"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/bootstrap"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(logging.Options{
		Level:      cfg.App.LogLevel,
		FilePath:   cfg.App.LogFile,
		Production: cfg.App.Environment == "production",
	})
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	bootstrap.SetGinMode(cfg.App.Environment)

	client := analysishttp.NewAnalysisClient(cfg.Analysis.Endpoint(), cfg.Analysis.Timeout)
	controller := service.NewController(client)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "doc-analysis-console",
		Version:        cfg.App.Version,
		UpstreamURL:    client.Endpoint(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxUploadMB:    cfg.Server.MaxUploadMB,
		Controller:     controller,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("analysis_endpoint", client.Endpoint()),
			zap.Duration("analysis_timeout", cfg.Analysis.Timeout),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
