package encoder

import "context"

// IEncoder defines the interface for the text embedding model.
// Implementations are safe for concurrent use; inference is serialized internally.
type IEncoder interface {
	// Encode computes one fixed-dimension vector per input text, in input
	// order. When normalize is true each vector is L2-normalized.
	Encode(ctx context.Context, texts []string, normalize bool) ([][]float32, error)
	// Dimensions returns the embedding vector size.
	Dimensions() int
	// Name returns the human-readable model name.
	Name() string
	// Close releases model resources.
	Close() error
}
