package http

import (
	"model-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Embed - Compute embeddings for a batch of texts
// @Summary Embed texts
// @Description Pair each text with the instruction and compute one embedding vector per text, in input order
// @Tags Embedding
// @Accept json
// @Produce json
// @Param body body embedReq true "Embed request"
// @Success 200 {object} embedResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /embed [post]
func (h *handler) Embed(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processEmbedRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "embedding.delivery.http.Embed: processEmbedRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput(h.instruction)

	// 3. Call UseCase
	output, err := h.uc.Embed(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "embedding.delivery.http.Embed: usecase Embed failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newEmbedResp(output))
}
