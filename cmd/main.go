package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dharavthjayanth/3D-Model/internal/config"
	"github.com/dharavthjayanth/3D-Model/internal/handlers"
	"github.com/dharavthjayanth/3D-Model/internal/logger"
	"github.com/dharavthjayanth/3D-Model/internal/metrics"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
	"github.com/dharavthjayanth/3D-Model/internal/repository/datadir"
	"github.com/dharavthjayanth/3D-Model/internal/server"
	"github.com/dharavthjayanth/3D-Model/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
)

func main() {
	// load configs/config.yml, ACDASH_* env and flags
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		logger.Get(logger.Options{Level: logger.InfoLevel}).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// resolve data directory
	paths, missing, err := datadir.Open(cfg.Data.Dir, datadir.Names{
		State:      cfg.Data.StateFile,
		History:    cfg.Data.HistoryFile,
		CommandLog: cfg.Data.CommandLogFile,
	})
	if err != nil {
		log.Fatalw("failed to open data directory", "err", err)
	}
	for _, path := range missing {
		log.Warnw("data file not found; requests reading it will fail until it exists", "path", path)
	}

	// wire dependencies
	repos := repository.NewRepository(paths)
	services := service.NewService(repos, service.Options{DefaultUser: cfg.Command.DefaultUser})
	apiHandler := handlers.NewHandler(services, log, newMetrics(), handlers.Options{
		HistoryLimit:   cfg.History.DefaultLimit,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// start HTTP server
	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "data_dir", paths.Dir)

	// graceful shutdown
	waitForShutdown(srv, cfg, log)
}

// newMetrics builds the API collectors plus the Go runtime and process ones.
func newMetrics() *metrics.Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.New(reg)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
