package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRerankRequest(c *gin.Context) (rerankReq, error) {
	var req rerankReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
