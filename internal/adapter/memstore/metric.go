package memstore

import (
	"fmt"
	"math"

	"scholar/internal/port"
)

// CosineMetric computes cosine distance: 1 - cosine similarity, range [0, 2].
// A zero-norm operand yields the maximum useful distance of 1.
type CosineMetric struct{}

func (CosineMetric) Name() string { return "cosine" }

func (CosineMetric) Distance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// EuclideanMetric computes the L2 distance between two vectors.
type EuclideanMetric struct{}

func (EuclideanMetric) Name() string { return "euclidean" }

func (EuclideanMetric) Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// NewMetric returns the metric registered under the given name.
func NewMetric(name string) (port.Metric, error) {
	switch name {
	case "", "cosine":
		return CosineMetric{}, nil
	case "euclidean", "l2":
		return EuclideanMetric{}, nil
	default:
		return nil, fmt.Errorf("unsupported distance metric: %s", name)
	}
}
