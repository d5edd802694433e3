// Package main provides the entry point for a mutual-exclusion peer.
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
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/clock"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/config"
	internalgrpc "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/grpc"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/logging"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/metrics"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/mutex"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/status"
	"github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/internal/workload"
	mutexv1 "github.com/fabioacandrade/gRPC-mutual-exclusion-distributed-sys/pkg/proto/mutex/v1"
)

func main() {
	cfg, err := config.LoadPeer()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	var logger zerolog.Logger
	if cfg.LogPretty {
		logger = logging.NewPrettyLogger("mutex-peer", cfg.LogLevel)
	} else {
		logger = logging.NewLogger("mutex-peer", cfg.LogLevel)
	}
	logger = logger.With().Uint32("peerId", cfg.PeerID).Logger()

	// Clients to the other peers and the print server.
	peerClients, err := internalgrpc.NewPeerClients(cfg.Peers, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up peer clients")
	}
	defer peerClients.Close()

	printClient, err := internalgrpc.NewPrintClient(cfg.PrintServerAddr, cfg.PrintTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up print client")
	}
	defer printClient.Close()

	clk := clock.New()
	engine := mutex.NewEngine(cfg.PeerID, peerClients.PeerIDs(), clk, peerClients, printClient, logger)

	// gRPC server for inbound protocol messages.
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.GRPCLogger(logger),
			metrics.GRPCMetrics(),
		),
	)
	mutexv1.RegisterMutexServiceServer(grpcServer, internalgrpc.NewMutexService(engine, logger))

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

	// HTTP server for health, status and metrics.
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))
	status.RegisterPeerRoutes(router, engine, printClient)
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

	// Workload generator driving the protocol.
	ctx, cancel := context.WithCancel(context.Background())
	generator := workload.NewGenerator(engine, cfg.RequestIntervalMin, cfg.RequestIntervalMax, logger)
	go generator.Run(ctx)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down peer...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server forced to shutdown")
	}
	grpcServer.GracefulStop()

	logger.Info().Msg("peer exited properly")
}
