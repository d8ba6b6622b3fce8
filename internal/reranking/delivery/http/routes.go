package http

import (
	"model-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, _ middleware.Middleware) {
	r.POST("/rerank", h.Rerank)
}
