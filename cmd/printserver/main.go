// Package main provides the entry point for the shared print server.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/clock"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/config"
	internalgrpc "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/grpc"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/logging"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/metrics"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/printjob"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/status"
	printerv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/printer/v1"
)

func main() {
	cfg, err := config.LoadPrintServer()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	var logger zerolog.Logger
	if cfg.LogPretty {
		logger = logging.NewPrettyLogger("print-server", cfg.LogLevel)
	} else {
		logger = logging.NewLogger("print-server", cfg.LogLevel)
	}

	// Job history: PostgreSQL when configured, in-memory otherwise.
	var store printjob.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		store = printjob.NewPostgresStore(pool)
		logger.Info().Msg("using PostgreSQL job history")
	} else {
		store = printjob.NewInMemoryStore()
		logger.Info().Msg("using in-memory job history")
	}

	printService := internalgrpc.NewPrintService(store, clock.New(), cfg.PrintDelayMin, cfg.PrintDelayMax, logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.GRPCLogger(logger),
			metrics.GRPCMetrics(),
		),
	)
	printerv1.RegisterPrintServiceServer(grpcServer, printService)

	listener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Fatal().Err(err).Str("port", cfg.GRPCPort).Msg("failed to listen")
	}

	go func() {
		logger.Info().Str("port", cfg.GRPCPort).Msg("starting gRPC server")
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal().Err(err).Msg("gRPC server failed")
		}
	}()

	// HTTP server for health, job history and metrics.
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))
	status.RegisterPrintServerRoutes(router, store)
	metrics.RegisterMetricsEndpoint(router)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting HTTP server")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down print server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server forced to shutdown")
	}
	grpcServer.GracefulStop()

	logger.Info().Msg("print server exited properly")
}
