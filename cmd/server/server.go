package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-character-forge/internal/clients/external"
	"github.com/KirkDiggler/rpg-character-forge/internal/clients/textgen"
	"github.com/KirkDiggler/rpg-character-forge/internal/config"
	forgev1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/allocation"
	diceorchestrator "github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/normalizer"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-character-forge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-character-forge/internal/redis"
	dicehistory "github.com/KirkDiggler/rpg-character-forge/internal/repositories/dice_history"
	wizardsession "github.com/KirkDiggler/rpg-character-forge/internal/repositories/wizard_session"
	"github.com/KirkDiggler/rpg-character-forge/internal/services/export"
)

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Character Forge gRPC server. Configuration comes from the environment and an optional .env file.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Port = grpcPort
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	handler, cleanup, err := buildHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	loggingOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			slog.Error("recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), loggingOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), loggingOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	forgev1alpha1.RegisterCharacterForgeServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(forgev1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Port,
			"ai_enabled", cfg.AIEnabled(),
			"roll_policy", cfg.RollPolicy)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires storage, clients and orchestrators behind the forge
// handler. The returned cleanup closes the redis connection.
func buildHandler(ctx context.Context, cfg *config.Config) (*forgev1alpha1.Handler, func(), error) {
	redis, err := redisclient.NewClientFromURL(cfg.RedisURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	cleanup := func() {
		_ = redis.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redis.Ping(pingCtx).Err(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	clk := clock.New()

	sessionRepo, err := wizardsession.NewRedisRepository(&wizardsession.Config{
		Client: redis,
		Clock:  clk,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	historyRepo, err := dicehistory.NewRedisRepository(&dicehistory.Config{Client: redis})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create dice history repository: %w", err)
	}

	allocator, err := allocation.New(&allocation.Config{
		Roller: dice.DefaultRoller,
		Policy: allocation.RollPolicy(cfg.RollPolicy),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create allocator: %w", err)
	}

	norm, err := normalizer.New(&normalizer.Config{})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create normalizer: %w", err)
	}

	textGen, err := textgen.NewOpenAIClient(&textgen.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.AITimeout,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create text generation client: %w", err)
	}

	var ext external.Client
	if cfg.DND5eAPIEnabled {
		ext, err = external.New(&external.Config{BaseURL: cfg.DND5eAPIBaseURL})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create dnd5e api client: %w", err)
		}
	}

	wizardService, err := wizard.NewOrchestrator(&wizard.Config{
		SessionRepo: sessionRepo,
		IDGenerator: idgen.NewUUID("sess"),
		Allocator:   allocator,
		Normalizer:  norm,
		TextGen:     textGen,
		EventBus:    events.NewBus(),
		External:    ext,
		SessionTTL:  cfg.SessionTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create wizard orchestrator: %w", err)
	}

	diceService, err := diceorchestrator.NewOrchestrator(&diceorchestrator.Config{
		HistoryRepo: historyRepo,
		IDGenerator: idgen.NewUUID("roll"),
		Roller:      dice.DefaultRoller,
		Clock:       clk,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	exportService, err := export.NewService(&export.Config{})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create export service: %w", err)
	}

	handler, err := forgev1alpha1.NewHandler(&forgev1alpha1.HandlerConfig{
		WizardService: wizardService,
		DiceService:   diceService,
		ExportService: exportService,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create forge handler: %w", err)
	}

	return handler, cleanup, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// interceptorLogger adapts slog to the grpc middleware logger.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
