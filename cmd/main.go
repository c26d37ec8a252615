package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"counter-lab/auth"
	"counter-lab/domain/event"
	grpc2 "counter-lab/grpc"
	"counter-lab/internal"
	"counter-lab/moderation"
	"counter-lab/observability"
	"counter-lab/projection"
	pb3 "counter-lab/proto/account"
	pb2 "counter-lab/proto/admin"
	pb "counter-lab/proto/counter"
	"counter-lab/repositories"
	"counter-lab/runtime"
	"counter-lab/runtime/workers"
	"counter-lab/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Label index & moderation
	index, err := repositories.NewLabelIndex(config.BlugeFilepath, log)
	if err != nil {
		return fmt.Errorf("label index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing label index...")
		_ = index.Close()
	}()

	censored, err := moderation.LoadCensoredWords()
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, []rune(config.CharReplacement)[0])
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	// 4. Setup Supervision & Orchestration
	telemetryChan := make(chan event.Event, config.BufferSize)
	sup := workers.NewSupervisor(log, telemetryChan, config.RestartInterval)
	registry := runtime.NewRegistry()
	monitoring := observability.NewMonitoringManager(log)
	counterRepository := repositories.NewCounterRepository(db, log)
	userRepository := repositories.NewUserRepository(db)
	feed := projection.NewFeed(config.FeedLimit)

	orchestrator := runtime.NewOrchestrator(
		log, sup, registry, counterRepository,
		monitoring, telemetryChan, config.BufferSize, config.SinkTimeout,
	)
	orchestrator.Add(feed)

	restartCounter := event.NewCounter()
	telemetryWorker := workers.NewTelemetryWorker(log, telemetryChan, []event.Handler{
		event.NewWorkerRestartedAfterPanicHandler(log, restartCounter),
		event.NewChannelCapacityHandler(log, config.LowCapacityThreshold),
	})
	healthWorker := workers.NewHealthWorker(log, monitoring, config.HealthInterval)
	sup.Add(telemetryWorker, healthWorker)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// 7. Debug page (counters + live stats)
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.CounterMapper, func() map[string]any {
		stats := monitoring.GetLatest()
		return map[string]any{
			"Joins":      stats.JoinsTotal,
			"Broadcasts": stats.BroadcastsTotal,
			"Dropped":    stats.EventsDropped,
			"Sessions":   stats.ActiveSessions,
			"Feed":       len(feed.Recent()),
		}
	})

	// 8. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(auth.AuthInterceptor))

	counterService := services.NewCounterService(orchestrator)
	adminService := services.NewAdminService(log, counterRepository, index, moderator, orchestrator)
	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)

	pb.RegisterCounterServiceServer(s, grpc2.NewCounterServer(log, counterService, monitoring, config.ConnectionBufferSize))
	pb2.RegisterCounterAdminServiceServer(s, grpc2.NewAdminServer(adminService))
	pb3.RegisterAuthServiceServer(s, grpc2.NewAuthServer(authService))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 10. Final Cleanup
	s.GracefulStop()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
