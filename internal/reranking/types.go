package reranking

// DefaultBatchSize is the scoring chunk size when the request omits one.
const DefaultBatchSize = 32

type RerankInput struct {
	Query      string
	Candidates []string
	BatchSize  int
}

type RerankOutput struct {
	Scores []float64
}
