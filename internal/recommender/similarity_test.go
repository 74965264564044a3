package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSelfSimilarity(t *testing.T) {
	v := []float64{0.5, 1.2, 0, 3.4}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-12)
}

func TestCosineSymmetry(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 0, 1}
	assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-12)
}

func TestCosineZeroNorm(t *testing.T) {
	zero := []float64{0, 0, 0}
	some := []float64{1, 2, 3}

	assert.Zero(t, Cosine(zero, some))
	assert.Zero(t, Cosine(some, zero))
	assert.Zero(t, Cosine(zero, zero))
}

func TestCosineOrthogonal(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	assert.Zero(t, Cosine(a, b))
}
