package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processEmbedRequest(c *gin.Context) (embedReq, error) {
	var req embedReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
