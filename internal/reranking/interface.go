package reranking

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Rerank(ctx context.Context, input RerankInput) (RerankOutput, error)
}
