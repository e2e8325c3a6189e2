package port

// Embedder generates vector embeddings for text.
type Embedder interface {
	// EmbedQuery generates the embedding for a single search query.
	EmbedQuery(text string) ([]float32, error)

	// EmbedDocuments generates embeddings for a batch of documents.
	// Returns one vector per input text, in input order.
	EmbedDocuments(texts []string) ([][]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string
}

// Metric computes the distance between two vectors of equal dimension.
// Smaller means more similar.
type Metric interface {
	Name() string
	Distance(a, b []float32) float64
}
