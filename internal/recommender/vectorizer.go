package recommender

import (
	"math"
	"sort"
)

// DefaultMaxFeatures caps the vocabulary size, mirroring the catalog
// model this engine replaces.
const DefaultMaxFeatures = 1000

// Vectorizer is a TF-IDF vectorizer with a vocabulary fixed at fit time.
// Fit is called once over the catalog corpus; Transform is a pure
// function afterwards and is safe for concurrent use.
type Vectorizer struct {
	maxFeatures int
	terms       []string // index -> term, lexicographic
	vocab       map[string]int
	idf         []float64
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// newVectorizerFromState rebuilds a fitted vectorizer from snapshot data.
// terms must be in index order with idf aligned.
func newVectorizerFromState(terms []string, idf []float64) *Vectorizer {
	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return &Vectorizer{
		maxFeatures: DefaultMaxFeatures,
		terms:       terms,
		vocab:       vocab,
		idf:         idf,
	}
}

// Fit builds the vocabulary and IDF weights from the corpus. The
// vocabulary is the top maxFeatures terms by total corpus frequency,
// frequency ties broken lexicographically, and the surviving terms are
// index-ordered lexicographically so refitting the same corpus always
// yields the same mapping.
func (v *Vectorizer) Fit(docs []string) {
	totals := make(map[string]int)
	df := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			totals[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	ranked := make([]string, 0, len(totals))
	for term := range totals {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}
	sort.Strings(ranked)

	v.terms = ranked
	v.vocab = make(map[string]int, len(ranked))
	v.idf = make([]float64, len(ranked))
	n := float64(len(docs))
	for i, term := range ranked {
		v.vocab[term] = i
		// smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform maps text onto the fitted vocabulary: raw term counts
// weighted by fit-time IDF. Out-of-vocabulary terms are dropped; text
// with no known terms yields the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range Tokenize(text) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	return vec
}

// TransformAll transforms every document, one row per input.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		rows[i] = v.Transform(doc)
	}
	return rows
}

// Terms returns the vocabulary in index order.
func (v *Vectorizer) Terms() []string { return v.terms }

// IDF returns the fit-time IDF weights, aligned to Terms.
func (v *Vectorizer) IDF() []float64 { return v.idf }

// Dimension is the vector length produced by Transform.
func (v *Vectorizer) Dimension() int { return len(v.terms) }
