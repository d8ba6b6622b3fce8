package http

import (
	"model-srv/internal/embedding"
	"model-srv/internal/middleware"
	"model-srv/pkg/discord"
	"model-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler exposes the embedding routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l           log.Logger
	uc          embedding.UseCase
	discord     discord.IDiscord
	instruction string // default instruction when the request omits one
}

// New - Factory
func New(l log.Logger, uc embedding.UseCase, discord discord.IDiscord, instruction string) Handler {
	if instruction == "" {
		instruction = embedding.DefaultInstruction
	}
	return &handler{l: l, uc: uc, discord: discord, instruction: instruction}
}
