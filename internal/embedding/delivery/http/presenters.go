package http

import "model-srv/internal/embedding"

// =====================================================
// Request DTOs
// =====================================================

type embedReq struct {
	Instruction string   `json:"instruction"`
	Texts       []string `json:"texts" binding:"required,min=1"`
	Normalize   *bool    `json:"normalize"`
	BatchSize   *int     `json:"batch_size" binding:"omitempty,gte=1"`
}

func (r embedReq) toInput(defaultInstruction string) embedding.EmbedInput {
	input := embedding.EmbedInput{
		Instruction: r.Instruction,
		Texts:       r.Texts,
		Normalize:   true,
		BatchSize:   embedding.DefaultBatchSize,
	}
	if input.Instruction == "" {
		input.Instruction = defaultInstruction
	}
	if r.Normalize != nil {
		input.Normalize = *r.Normalize
	}
	if r.BatchSize != nil {
		input.BatchSize = *r.BatchSize
	}
	return input
}

// =====================================================
// Response DTOs
// =====================================================

type embedResp struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func (h *handler) newEmbedResp(output embedding.EmbedOutput) embedResp {
	return embedResp{Embeddings: output.Vectors}
}
