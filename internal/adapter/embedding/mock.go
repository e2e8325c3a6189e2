package embedding

// MockEmbedder produces deterministic vectors derived from input bytes.
// Useful for tests and offline benchmarks.
type MockEmbedder struct {
	dimension int
}

func NewMockEmbedder(dimension int) *MockEmbedder {
	return &MockEmbedder{dimension: dimension}
}

func (e *MockEmbedder) EmbedQuery(text string) ([]float32, error) {
	return e.embed(text), nil
}

func (e *MockEmbedder) EmbedDocuments(texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = e.embed(text)
	}
	return embeddings, nil
}

func (e *MockEmbedder) embed(text string) []float32 {
	vec := make([]float32, e.dimension)
	for i, r := range text {
		if i >= e.dimension {
			break
		}
		vec[i] = float32(r) / 1000.0
	}
	return vec
}

func (e *MockEmbedder) Dimension() int {
	return e.dimension
}

func (e *MockEmbedder) ModelName() string {
	return "mock"
}
