package crossencoder

import "context"

// ICrossEncoder defines the interface for the (query, passage) scoring model.
// Implementations are safe for concurrent use; inference is serialized internally.
type ICrossEncoder interface {
	// Score computes one relevance score per candidate, in candidate order.
	// Scores are sigmoid-normalized to the 0..1 range.
	Score(ctx context.Context, query string, candidates []string) ([]float64, error)
	// Name returns the human-readable model name.
	Name() string
	// Close releases model resources.
	Close() error
}
