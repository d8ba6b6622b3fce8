package http

import (
	"errors"

	"model-srv/internal/reranking"
	pkgErrors "model-srv/pkg/errors"
)

var (
	errEmptyQuery = pkgErrors.NewHTTPError(
		400, "Query must not be empty",
	)
	errEmptyCandidates = pkgErrors.NewHTTPError(
		400, "Candidates must not be empty",
	)
	errInvalidBatchSize = pkgErrors.NewHTTPError(
		400, "Batch size must be at least 1",
	)
	errScoringFailed = pkgErrors.NewHTTPError(
		500, "Failed to score candidates",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reranking.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, reranking.ErrEmptyCandidates):
		return errEmptyCandidates
	case errors.Is(err, reranking.ErrInvalidBatchSize):
		return errInvalidBatchSize
	case errors.Is(err, reranking.ErrMismatchScoreCount):
		return errScoringFailed
	default:
		return errScoringFailed
	}
}
