package reranking

import "errors"

var (
	ErrEmptyQuery         = errors.New("reranking: empty query")
	ErrEmptyCandidates    = errors.New("reranking: empty candidates")
	ErrInvalidBatchSize   = errors.New("reranking: batch size must be at least 1")
	ErrMismatchScoreCount = errors.New("reranking: mismatch score count")
)
