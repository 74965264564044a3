package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizerFitDeterminism(t *testing.T) {
	docs := []string{
		"python machine learning statistics",
		"javascript react css html",
		"python sql docker aws",
	}

	a := NewVectorizer(0)
	a.Fit(docs)
	b := NewVectorizer(0)
	b.Fit(docs)

	assert.Equal(t, a.Terms(), b.Terms())
	assert.Equal(t, a.IDF(), b.IDF())
	assert.Equal(t, a.TransformAll(docs), b.TransformAll(docs))
}

func TestVectorizerVocabularyIsLexicographic(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"zebra apple mango"})

	assert.Equal(t, []string{"apple", "mango", "zebra"}, v.Terms())
}

func TestVectorizerMaxFeaturesTieBreak(t *testing.T) {
	// "bb" appears twice; "aa" and "cc" tie at one occurrence each, so
	// the cap of 2 keeps "aa" by lexicographic order.
	v := NewVectorizer(2)
	v.Fit([]string{"bb cc", "bb aa"})

	assert.Equal(t, []string{"aa", "bb"}, v.Terms())
}

func TestVectorizerSmoothedIDF(t *testing.T) {
	// Two docs, "python" in both (df=2), "react" in one (df=1).
	v := NewVectorizer(0)
	v.Fit([]string{"python react", "python sql"})

	idx := -1
	for i, term := range v.Terms() {
		if term == "python" {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)

	want := math.Log(3.0/3.0) + 1
	assert.InDelta(t, want, v.IDF()[idx], 1e-12)
}

func TestTransformUnknownTermsYieldZeroVector(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"python sql", "docker aws"})

	vec := v.Transform("underwater basket weaving")
	require.Len(t, vec, v.Dimension())
	for _, x := range vec {
		assert.Zero(t, x)
	}
}

func TestTransformDoesNotMutateFitState(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"python sql", "docker aws"})

	terms := append([]string(nil), v.Terms()...)
	idf := append([]float64(nil), v.IDF()...)

	_ = v.Transform("python docker something new here")
	_ = v.Transform("")

	assert.Equal(t, terms, v.Terms())
	assert.Equal(t, idf, v.IDF())
}

func TestTransformCountsRepeats(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"python sql"})

	once := v.Transform("python")
	twice := v.Transform("python python")

	idx := -1
	for i, term := range v.Terms() {
		if term == "python" {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	assert.InDelta(t, 2*once[idx], twice[idx], 1e-12)
}
