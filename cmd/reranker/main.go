package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"model-srv/config"
	configModelstore "model-srv/config/modelstore"
	_ "model-srv/docs" // Import swagger docs
	"model-srv/internal/httpserver"
	rerankingHTTP "model-srv/internal/reranking/delivery/http"
	rerankingUC "model-srv/internal/reranking/usecase"
	"model-srv/pkg/crossencoder"
	"model-srv/pkg/discord"
	"model-srv/pkg/log"
	"model-srv/pkg/onnx"
)

// @title       Reranking Service API
// @description Cross-encoder reranking service API documentation.
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
		files := []string{crossencoder.ModelFile, crossencoder.TokenizerFile}
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

	// 7. Load the cross-encoder model
	ce, err := crossencoder.NewCrossEncoder(runtime, crossencoder.CrossEncoderConfig{
		ModelDir:          cfg.Model.Dir,
		Name:              cfg.Model.Name,
		MaxSequenceLength: cfg.Model.MaxSequenceLength,
	})
	if err != nil {
		logger.Error(ctx, "Failed to load cross-encoder model: ", err)
		return
	}
	defer ce.Close()
	logger.Infof(ctx, "Cross-encoder model loaded: %s", ce.Name())

	// 8. Initialize UseCase and handler
	uc := rerankingUC.New(logger, ce)
	handler := rerankingHTTP.New(logger, uc, discordClient)

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ServiceName: "reranker",

		// Model Configuration
		Device: string(runtime.Device()),

		// Route & readiness wiring
		Handlers: []httpserver.RouteRegistrar{handler},

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
