package http

import (
	"model-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Rerank - Score candidates against a query
// @Summary Rerank candidates
// @Description Score each candidate against the query with the cross-encoder, returning one relevance score per candidate in input order
// @Tags Reranking
// @Accept json
// @Produce json
// @Param body body rerankReq true "Rerank request"
// @Success 200 {object} rerankResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /rerank [post]
func (h *handler) Rerank(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processRerankRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reranking.delivery.http.Rerank: processRerankRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.Rerank(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "reranking.delivery.http.Rerank: usecase Rerank failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newRerankResp(output))
}
