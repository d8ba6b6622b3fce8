package httpserver

import (
	"context"
	"errors"

	"model-srv/internal/middleware"
	"model-srv/pkg/discord"
	"model-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar mounts a domain's routes on the engine. Each binary injects
// the handlers for the model it serves.
type RouteRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// ReadyCheck reports whether a startup dependency is ready to serve.
type ReadyCheck func(ctx context.Context) error

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	serviceName string

	// Model Configuration
	device string

	// Route & readiness wiring
	handlers    []RouteRegistrar
	readyChecks []ReadyCheck

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	ServiceName string

	// Model Configuration
	Device string

	// Route & readiness wiring
	Handlers    []RouteRegistrar
	ReadyChecks []ReadyCheck

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		serviceName: cfg.ServiceName,
		device:      cfg.Device,
		handlers:    cfg.Handlers,
		readyChecks: cfg.ReadyChecks,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.serviceName == "" {
		return errors.New("service name is required")
	}
	if srv.device == "" {
		return errors.New("device is required")
	}
	if len(srv.handlers) == 0 {
		return errors.New("at least one route registrar is required")
	}
	return nil
}
