package main

import (
	"chat-notifier/domain"
	"chat-notifier/infrastructure/host"
	"chat-notifier/infrastructure/storage"
	"chat-notifier/internal"
	"chat-notifier/notification"
	"chat-notifier/runtime"
	"chat-notifier/runtime/workers"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newRunCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read new message signals and callbacks as JSON lines and render notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			in := io.Reader(os.Stdin)
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			code, err := run(cmd.Context(), config, in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "JSON lines source, - for stdin")
	return cmd
}

// run wires the notifier and blocks until a signal, the end of the input
// or a stop request from the foreground notification.
// Returning instead of exiting lets every defer close its resource.
func run(parent context.Context, config internal.Config, in io.Reader, out io.Writer) (int, error) {
	if parent == nil {
		parent = context.Background()
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 1. Journal (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return 0, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	journal := storage.NewJournalRepository(db, log)

	// 2. Context, signals and the stop request
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	exitCode := 0
	terminator := host.ExitFunc(func(code int) {
		exitCode = code
		cancel()
	})

	// 3. Host collaborators
	broadcasts := host.NewBroadcaster(log)
	surface := host.NewSurface(out, color.SupportColor(), broadcasts)
	manager := notification.NewJournaledManager(log, surface, journal)
	launcher := host.NewLauncher(out, config.LaunchActivity)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	service := workers.NewKeepAliveService(log, sup,
		workers.NewKeepAliveWorker(log, manager, config.KeepAliveInterval))

	// 4. Controller
	controller, err := runtime.NewController(log, manager, service, broadcasts, launcher, terminator,
		channel(config), config.AvatarSize, config.BufferSize)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := controller.Stop(); err != nil {
			log.Error("Controller stopped with errors", "error", err)
		}
	}()

	// 5. Optional diagnostics
	healthServer, err := startHealth(ctx, log, config.HealthPort)
	if err != nil {
		return 0, err
	}
	if config.DebugPort > 0 {
		stats := func() map[string]any {
			s := controller.Stats()
			s["Restarts"] = sup.Restarts()
			s["Abandoned"] = sup.Abandoned()
			return s
		}
		internal.StartDebugServer(ctx, log, config.DebugPort, "/inspect",
			internal.InspectHandler(journal, config.JournalLimit, nil, stats))
	}

	// 6. Input transport
	transport := host.NewTransport(log, in, controller, surface, broadcasts)
	inputDone := make(chan error, 1)
	go func() { inputDone <- transport.Run(ctx) }()

	loopDone := make(chan error, 1)
	go func() { loopDone <- controller.Run(ctx) }()

	// 7. Wait for stop, input end or signal
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-inputDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Input transport failed", "error", err)
		}
		log.Info("Input closed, shutting down")
	case <-controller.Stopped():
		log.Info("Controller stopped")
	}

	// The loop handles what the input already queued before returning
	cancel()
	<-loopDone
	if healthServer != nil {
		healthServer.Shutdown()
	}
	log.Info("Program stopped cleanly", "exit", exitCode)
	return exitCode, nil
}

func channel(config internal.Config) domain.Channel {
	return domain.Channel{
		ID:          domain.ChannelID,
		Name:        domain.ChannelName,
		Description: "Status chat notifications",
		Importance:  domain.ImportanceHigh,
		SoundURI:    config.SoundURI(),
		SoundUsage:  "notification",
		ShowBadge:   true,
	}
}

// startHealth serves grpc.health.v1 on port, reporting SERVING until ctx is done.
func startHealth(ctx context.Context, log *slog.Logger, port int) (*health.Server, error) {
	if port <= 0 {
		return nil, nil
	}
	address := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		log.Info("Starting gRPC health server", "address", address)
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("gRPC health server error", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		s.GracefulStop()
	}()
	return healthServer, nil
}
