package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. One config file is deployed per
// binary; the embedder and the reranker share the same shape.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Model - ONNX model and runtime
	Model ModelConfig

	// Redis - Embedding cache (optional; empty host disables it)
	Redis RedisConfig

	// MinIO - Model artifact store (optional; empty endpoint disables it)
	MinIO MinIOConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ModelConfig is the configuration for the loaded model and ONNX runtime.
type ModelConfig struct {
	// Dir is the local directory holding model.onnx and tokenizer.json.
	Dir string
	// Name is the human-readable model name reported in logs.
	Name string
	// LibraryPath points at the onnxruntime shared library; empty uses the
	// platform default.
	LibraryPath string
	// Device is auto, cuda or cpu. Resolved once at startup.
	Device string
	// DeviceID selects the GPU when running on CUDA.
	DeviceID int
	// MaxSequenceLength caps tokenized inputs.
	MaxSequenceLength int
	// Instruction is the default instruction paired with each text when the
	// request omits one (embedder only).
	Instruction string
}

// RedisConfig is the configuration for the embedding cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled reports whether the cache is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig is the configuration for the model artifact store.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	Prefix    string
}

// Enabled reports whether artifact fetching is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// DiscordConfig is the configuration for error alerting (optional).
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("model-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/model-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Model
	cfg.Model.Dir = viper.GetString("model.dir")
	cfg.Model.Name = viper.GetString("model.name")
	cfg.Model.LibraryPath = viper.GetString("model.library_path")
	cfg.Model.Device = viper.GetString("model.device")
	cfg.Model.DeviceID = viper.GetInt("model.device_id")
	cfg.Model.MaxSequenceLength = viper.GetInt("model.max_sequence_length")
	cfg.Model.Instruction = viper.GetString("model.instruction")

	// Redis - Embedding cache
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO - Model artifact store
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.Prefix = viper.GetString("minio.prefix")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Model
	viper.SetDefault("model.dir", "/models/current")
	viper.SetDefault("model.device", "auto")
	viper.SetDefault("model.device_id", 0)
	viper.SetDefault("model.max_sequence_length", 512)
	viper.SetDefault("model.instruction", "Represent the document for retrieval: ")

	// Redis (cache disabled unless a host is configured)
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// MinIO (artifact fetch disabled unless an endpoint is configured)
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "models")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}

	if cfg.Model.Dir == "" {
		return fmt.Errorf("model.dir is required")
	}
	switch cfg.Model.Device {
	case "auto", "cuda", "cpu":
	default:
		return fmt.Errorf("model.device must be auto, cuda or cpu")
	}
	if cfg.Model.MaxSequenceLength < 1 {
		return fmt.Errorf("model.max_sequence_length must be at least 1")
	}

	if cfg.Redis.Enabled() && cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required when redis.host is set")
	}

	if cfg.MinIO.Enabled() {
		if cfg.MinIO.AccessKey == "" {
			return fmt.Errorf("minio.access_key is required when minio.endpoint is set")
		}
		if cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.secret_key is required when minio.endpoint is set")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required when minio.endpoint is set")
		}
	}

	return nil
}
