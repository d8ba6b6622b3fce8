package http

import (
	"errors"

	"model-srv/internal/embedding"
	pkgErrors "model-srv/pkg/errors"
)

var (
	errEmptyTexts = pkgErrors.NewHTTPError(
		400, "Texts must not be empty",
	)
	errInvalidBatchSize = pkgErrors.NewHTTPError(
		400, "Batch size must be at least 1",
	)
	errInferenceFailed = pkgErrors.NewHTTPError(
		500, "Failed to compute embeddings",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, embedding.ErrEmptyTexts):
		return errEmptyTexts
	case errors.Is(err, embedding.ErrInvalidBatchSize):
		return errInvalidBatchSize
	case errors.Is(err, embedding.ErrMismatchVectorCount):
		return errInferenceFailed
	default:
		return errInferenceFailed
	}
}
