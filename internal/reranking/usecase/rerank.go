package usecase

import (
	"context"

	"model-srv/internal/reranking"
)

func (uc *implUseCase) Rerank(ctx context.Context, input reranking.RerankInput) (reranking.RerankOutput, error) {
	if input.Query == "" {
		uc.l.Errorf(ctx, "reranking.usecase.Rerank: empty query")
		return reranking.RerankOutput{}, reranking.ErrEmptyQuery
	}
	if len(input.Candidates) == 0 {
		uc.l.Errorf(ctx, "reranking.usecase.Rerank: empty candidates")
		return reranking.RerankOutput{}, reranking.ErrEmptyCandidates
	}
	if input.BatchSize < 1 {
		uc.l.Errorf(ctx, "reranking.usecase.Rerank: invalid batch size %d", input.BatchSize)
		return reranking.RerankOutput{}, reranking.ErrInvalidBatchSize
	}

	// BatchSize controls chunking only; the output always has one score per
	// candidate, in input order.
	scores := make([]float64, 0, len(input.Candidates))
	for start := 0; start < len(input.Candidates); start += input.BatchSize {
		end := start + input.BatchSize
		if end > len(input.Candidates) {
			end = len(input.Candidates)
		}
		chunk := input.Candidates[start:end]

		chunkScores, err := uc.ce.Score(ctx, input.Query, chunk)
		if err != nil {
			uc.l.Errorf(ctx, "reranking.usecase.Rerank: score failed: %v", err)
			return reranking.RerankOutput{}, err
		}
		if len(chunkScores) != len(chunk) {
			uc.l.Errorf(ctx, "reranking.usecase.Rerank: mismatch score count: got %d, want %d", len(chunkScores), len(chunk))
			return reranking.RerankOutput{}, reranking.ErrMismatchScoreCount
		}

		scores = append(scores, chunkScores...)
	}

	return reranking.RerankOutput{Scores: scores}, nil
}
