package memstore

import (
	"math"
	"testing"
)

func TestCosineDistance(t *testing.T) {
	m := CosineMetric{}

	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, 2},
		{"scale invariant", []float32{2, 0}, []float32{5, 0}, 0},
		{"zero norm", []float32{0, 0}, []float32{1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	m := EuclideanMetric{}

	got := m.Distance([]float32{1, 0}, []float32{0, 1})
	if math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("expected sqrt(2), got %f", got)
	}

	if d := m.Distance([]float32{3, 4}, []float32{0, 0}); math.Abs(d-5) > 1e-9 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestNewMetric(t *testing.T) {
	if m, err := NewMetric(""); err != nil || m.Name() != "cosine" {
		t.Errorf("expected cosine default, got %v, %v", m, err)
	}
	if m, err := NewMetric("euclidean"); err != nil || m.Name() != "euclidean" {
		t.Errorf("expected euclidean, got %v, %v", m, err)
	}
	if _, err := NewMetric("manhattan"); err == nil {
		t.Error("expected error for unsupported metric")
	}
}
