package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/lingbai-i/YueLi/internal/app"
	"github.com/lingbai-i/YueLi/internal/catalog"
	"github.com/lingbai-i/YueLi/internal/decision"
	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/emotion"
	"github.com/lingbai-i/YueLi/internal/ingest"
	"github.com/lingbai-i/YueLi/internal/motion"
	"github.com/lingbai-i/YueLi/internal/platform/config"
	"github.com/lingbai-i/YueLi/internal/platform/logging"
	"github.com/lingbai-i/YueLi/internal/relationship"
	"github.com/lingbai-i/YueLi/internal/server"
	"github.com/lingbai-i/YueLi/internal/transport"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(ctx context.Context, redisURL string) *goredis.Client {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

// setupState picks the emotion store and relationship source: Redis
// when configured, in-process otherwise.
func setupState(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (domain.EmotionStore, domain.RelationshipProvider, func()) {
	if cfg.RedisURL == "" {
		slog.Info("Using in-memory emotion store")
		store := emotion.NewMemoryStore(clock)
		return store, relationship.Static{Value: int(cfg.DefaultIntimacy)}, func() {}
	}

	client := setupRedis(ctx, cfg.RedisURL)
	slog.Info("Using Redis emotion store")
	store := emotion.NewRedisStore(client, clock)
	provider := relationship.NewRedisProvider(client, int(cfg.DefaultIntimacy))
	return store, provider, func() { _ = client.Close() }
}

func runGracefulShutdown(srv *server.Server, brain *transport.Client, cancel context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if err := brain.Close(); err != nil {
			slog.Error("Transport close error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, relationships, closeState := setupState(ctx, cfg, clock)
	defer closeState()

	engine := decision.NewEngine(store, relationships, catalog.Actions)
	mover := motion.NewController(motion.LogTapper{Logger: logger})

	appSvc := app.NewService(engine, store, mover, clock, logger, app.Options{
		DefaultConversation: cfg.RoomID,
		PruneTTL:            cfg.PruneTTL,
		PruneInterval:       cfg.PruneInterval,
	})

	brain := transport.NewClient(cfg.BrainWSURL, cfg.BrainToken, cfg.PlatformName, cfg.RoomID, logger)
	brain.SetReplyHandler(appSvc.HandleReply)

	dispatcher := ingest.NewDispatcher(brain, clock, logger)

	go func() {
		if err := brain.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Transport stopped", "error", err)
		}
	}()
	go func() {
		if err := dispatcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Dispatcher stopped", "error", err)
		}
	}()
	go func() {
		if err := appSvc.RunPruner(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Pruner stopped", "error", err)
		}
	}()

	srv := server.New(cfg.Port, appSvc, store, catalog.Actions, dispatcher, logger)

	done := runGracefulShutdown(srv, brain, cancel)

	logger.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
