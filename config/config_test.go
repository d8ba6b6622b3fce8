package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080, Mode: "release"},
			Model: ModelConfig{
				Dir:               "/models/current",
				Device:            "auto",
				MaxSequenceLength: 512,
			},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := base()
		cfg.HTTPServer.Port = 0
		if err := validate(cfg); err == nil {
			t.Error("expected error for missing port")
		}
	})

	t.Run("missing model dir", func(t *testing.T) {
		cfg := base()
		cfg.Model.Dir = ""
		if err := validate(cfg); err == nil {
			t.Error("expected error for missing model dir")
		}
	})

	t.Run("invalid device", func(t *testing.T) {
		cfg := base()
		cfg.Model.Device = "tpu"
		if err := validate(cfg); err == nil {
			t.Error("expected error for invalid device")
		}
	})

	t.Run("invalid max sequence length", func(t *testing.T) {
		cfg := base()
		cfg.Model.MaxSequenceLength = 0
		if err := validate(cfg); err == nil {
			t.Error("expected error for invalid max sequence length")
		}
	})

	t.Run("minio requires credentials when enabled", func(t *testing.T) {
		cfg := base()
		cfg.MinIO.Endpoint = "minio:9000"
		cfg.MinIO.Bucket = "models"
		if err := validate(cfg); err == nil {
			t.Error("expected error for missing minio credentials")
		}

		cfg.MinIO.AccessKey = "key"
		cfg.MinIO.SecretKey = "secret"
		if err := validate(cfg); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("redis disabled without host", func(t *testing.T) {
		cfg := base()
		if cfg.Redis.Enabled() {
			t.Error("redis should be disabled without a host")
		}
		cfg.Redis.Host = "localhost"
		if !cfg.Redis.Enabled() {
			t.Error("redis should be enabled with a host")
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port mismatch: got %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.Mode != "release" {
		t.Errorf("mode mismatch: got %q, want release", cfg.HTTPServer.Mode)
	}
	if cfg.Model.Device != "auto" {
		t.Errorf("device mismatch: got %q, want auto", cfg.Model.Device)
	}
	if cfg.Model.MaxSequenceLength != 512 {
		t.Errorf("max sequence length mismatch: got %d, want 512", cfg.Model.MaxSequenceLength)
	}
	if cfg.Model.Instruction != "Represent the document for retrieval: " {
		t.Errorf("instruction mismatch: got %q", cfg.Model.Instruction)
	}
	if cfg.Redis.Enabled() {
		t.Error("redis should be disabled by default")
	}
	if cfg.MinIO.Enabled() {
		t.Error("minio should be disabled by default")
	}
}
