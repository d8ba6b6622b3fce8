package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"model-srv/config"
	configModelstore "model-srv/config/modelstore"
	configRedis "model-srv/config/redis"
	_ "model-srv/docs" // Import swagger docs
	embeddingHTTP "model-srv/internal/embedding/delivery/http"
	"model-srv/internal/embedding/repository"
	embeddingRedis "model-srv/internal/embedding/repository/redis"
	embeddingUC "model-srv/internal/embedding/usecase"
	"model-srv/internal/httpserver"
	"model-srv/pkg/discord"
	"model-srv/pkg/encoder"
	"model-srv/pkg/log"
	"model-srv/pkg/onnx"
)

// @title       Embedding Service API
// @description Instruction-paired text embedding service API documentation.
// @version     1
// @schemes     http
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// 4. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Fetch model artifacts (optional; local files win)
	if cfg.MinIO.Enabled() {
		store, err := configModelstore.Connect(ctx, logger, cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to model store: ", err)
			return
		}
		files := []string{encoder.ModelFile, encoder.TokenizerFile}
		if err := store.EnsureLocal(ctx, cfg.Model.Dir, files); err != nil {
			logger.Error(ctx, "Failed to fetch model artifacts: ", err)
			return
		}
		logger.Infof(ctx, "Model artifacts present in %s", cfg.Model.Dir)
	}

	// 6. Initialize ONNX runtime
	// The compute device is resolved once here and reported by /healthz.
	runtime, err := onnx.Init(onnx.Config{
		LibraryPath: cfg.Model.LibraryPath,
		Device:      cfg.Model.Device,
		DeviceID:    cfg.Model.DeviceID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize ONNX runtime: ", err)
		return
	}
	defer runtime.Destroy()
	logger.Infof(ctx, "ONNX runtime initialized on device: %s", runtime.Device())

	// 7. Load the embedding model
	enc, err := encoder.NewEncoder(runtime, encoder.EncoderConfig{
		ModelDir:          cfg.Model.Dir,
		Name:              cfg.Model.Name,
		MaxSequenceLength: cfg.Model.MaxSequenceLength,
	})
	if err != nil {
		logger.Error(ctx, "Failed to load embedding model: ", err)
		return
	}
	defer enc.Close()
	logger.Infof(ctx, "Embedding model loaded: %s (%d dimensions)", enc.Name(), enc.Dimensions())

	// 8. Initialize Redis cache (optional)
	var repo repository.Repository
	readyChecks := []httpserver.ReadyCheck{}
	if cfg.Redis.Enabled() {
		redisClient, err := configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		repo = embeddingRedis.New(redisClient, logger)
		readyChecks = append(readyChecks, redisClient.Ping)
		logger.Infof(ctx, "Redis cache connected to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 9. Initialize UseCase and handler
	uc := embeddingUC.New(logger, enc, repo)
	handler := embeddingHTTP.New(logger, uc, discordClient, cfg.Model.Instruction)

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ServiceName: "embedder",

		// Model Configuration
		Device: string(runtime.Device()),

		// Route & readiness wiring
		Handlers:    []httpserver.RouteRegistrar{handler},
		ReadyChecks: readyChecks,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
