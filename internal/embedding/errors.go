package embedding

import "errors"

var (
	ErrEmptyTexts          = errors.New("embedding: empty texts")
	ErrInvalidBatchSize    = errors.New("embedding: batch size must be at least 1")
	ErrMismatchVectorCount = errors.New("embedding: mismatch vector count")
)
