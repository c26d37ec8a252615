package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "counter-lab/proto/counter"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"COUNTER_SERVER_ADDR,default=localhost:8080"`
	RoomID        string `env:"COUNTER_ROOM_ID,required=true"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle, configuration loading, and event streaming.
// This pattern ensures clean resource management and error propagation.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the Counter-Lab server.
	// We use the address provided in the configuration.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	// Defer ensures the connection is closed even if the stream fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := v1.NewCounterServiceClient(conn)

	// 4. Initiate the bidirectional stream and join the counter room.
	// Joining subscribes this session AND increments the counter once.
	stream, err := client.Connect(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	if err := stream.Send(&v1.JoinRequest{RoomId: config.RoomID}); err != nil {
		return exitRuntime, fmt.Errorf("failed to join room: %w", err)
	}

	log.Info(fmt.Sprintf(">>> Connected to %s! Joining Room %s (Ctrl+C to quit)...",
		config.ServerAddress, config.RoomID))

	// 5. Event reception loop.
	// This loop runs until the context is canceled or the server closes the connection.
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		default:
			resp, err := stream.Recv()
			if err != nil {
				// Normal exit if the user triggered a shutdown.
				if ctx.Err() != nil {
					return exitOK, nil
				}
				return exitRuntime, fmt.Errorf("stream error: %w", err)
			}

			switch evt := resp.Event.(type) {
			case *v1.CounterEvent_Ack:
				if !evt.Ack.Ok {
					return exitRuntime, fmt.Errorf("join refused for room %s", evt.Ack.RoomId)
				}
				log.Info(fmt.Sprintf("[JOINED] room %s is now at %d", evt.Ack.RoomId, evt.Ack.Value))
			case *v1.CounterEvent_Increment:
				log.Info(fmt.Sprintf("[COUNT] room %s -> %d", evt.Increment.RoomId, evt.Increment.Value))
			}
		}
	}
}
