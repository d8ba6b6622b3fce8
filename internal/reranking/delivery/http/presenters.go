package http

import "model-srv/internal/reranking"

// =====================================================
// Request DTOs
// =====================================================

type rerankReq struct {
	Query      string   `json:"query" binding:"required"`
	Candidates []string `json:"candidates" binding:"required,min=1"`
	BatchSize  *int     `json:"batch_size" binding:"omitempty,gte=1"`
}

func (r rerankReq) toInput() reranking.RerankInput {
	input := reranking.RerankInput{
		Query:      r.Query,
		Candidates: r.Candidates,
		BatchSize:  reranking.DefaultBatchSize,
	}
	if r.BatchSize != nil {
		input.BatchSize = *r.BatchSize
	}
	return input
}

// =====================================================
// Response DTOs
// =====================================================

type rerankResp struct {
	Scores []float64 `json:"scores"`
}

func (h *handler) newRerankResp(output reranking.RerankOutput) rerankResp {
	return rerankResp{Scores: output.Scores}
}
