package http

import (
	"model-srv/internal/middleware"
	"model-srv/internal/reranking"
	"model-srv/pkg/discord"
	"model-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler exposes the reranking routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      reranking.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc reranking.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
