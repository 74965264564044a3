package recommender

import (
	"encoding/json"

	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/utils"
)

// snapshotState is the serialized form of a fitted engine. Restoring it
// must reproduce identical scores for identical queries, so the fitted
// matrix is carried verbatim rather than recomputed.
type snapshotState struct {
	Vocabulary []string        `json:"vocabulary"` // index order
	IDF        []float64       `json:"idf"`
	Matrix     [][]float64     `json:"matrix"`
	Careers    []models.Career `json:"careers"`
}

// Snapshot serializes the current fitted state.
func (e *Engine) Snapshot() ([]byte, error) {
	const op = "Engine.Snapshot"

	st := e.snapshot()
	data, err := json.Marshal(snapshotState{
		Vocabulary: st.vec.Terms(),
		IDF:        st.vec.IDF(),
		Matrix:     st.docs,
		Careers:    st.careers,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to serialize model", err)
	}
	return data, nil
}

func restoreState(data []byte) (*fitted, error) {
	const op = "Engine.Restore"

	var ss snapshotState
	if err := json.Unmarshal(data, &ss); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to parse model snapshot", err)
	}
	if len(ss.Vocabulary) != len(ss.IDF) || len(ss.Matrix) != len(ss.Careers) {
		return nil, utils.E(utils.CodeInternal, op, "model snapshot is inconsistent", nil)
	}

	// Re-run catalog validation to rebuild the experience floors and the
	// id index; the vectorizer and matrix come straight from the snapshot.
	st, err := fit(ss.Careers)
	if err != nil {
		return nil, err
	}
	st.vec = newVectorizerFromState(ss.Vocabulary, ss.IDF)
	st.docs = ss.Matrix
	return st, nil
}

// Restore rebuilds an engine from a Snapshot payload.
func Restore(data []byte) (*Engine, error) {
	st, err := restoreState(data)
	if err != nil {
		return nil, err
	}
	return &Engine{state: st}, nil
}

// Restore replaces the engine's fitted state with a Snapshot payload,
// under the same swap rule as Refit.
func (e *Engine) Restore(data []byte) error {
	st, err := restoreState(data)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
	return nil
}
