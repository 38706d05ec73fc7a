package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beanflow-api/internal/audit"
	"github.com/BruksfildServices01/beanflow-api/internal/config"
	dbpkg "github.com/BruksfildServices01/beanflow-api/internal/db"
	"github.com/BruksfildServices01/beanflow-api/internal/logger"
	"github.com/BruksfildServices01/beanflow-api/internal/routes"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("error", logger.FormatJSON)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(log), log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, log, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	auditDispatcher.Close()

	if err := dbpkg.Close(db); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}
