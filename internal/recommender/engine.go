package recommender

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/utils"
)

// DefaultTopN is how many recommendations Recommend returns when the
// caller does not ask for a specific limit.
const DefaultTopN = 5

// maxScore is the hard cap on a combined match score.
const maxScore = 99.9

// Query is one recommendation request. It is built per call and
// discarded after scoring.
type Query struct {
	Skills          string
	Interests       string
	ExperienceYears int
	EducationLevel  string
}

// Match pairs a catalog career with its score for one query. The career
// value is a copy; the stored catalog is never written to.
type Match struct {
	Career models.Career `json:"career"`
	Score  float64       `json:"score"`
}

// SkillGapResult is the gap analysis between a user's skills and one
// target career's requirements.
type SkillGapResult struct {
	TargetCareer       string   `json:"target_career"`
	MatchPercentage    float64  `json:"match_percentage"`
	ExistingSkills     []string `json:"existing_skills"`
	MissingRequired    []string `json:"missing_required"`
	MissingRecommended []string `json:"missing_recommended"`
	LearningPath       []string `json:"learning_path"`
	TimeToProficiency  string   `json:"time_to_proficiency"`
}

// fitted is one immutable generation of engine state. Refit builds a
// fresh generation and swaps the pointer, so in-flight queries keep
// reading a consistent catalog/matrix pair.
type fitted struct {
	careers  []models.Career
	expFloor []float64   // minimum years parsed from ExperienceNeeded, aligned to careers
	byID     map[int]int // career id -> row index
	vec      *Vectorizer
	docs     [][]float64 // TF-IDF matrix, one row per career in catalog order
}

// Engine ranks a fixed career catalog against free-text queries and
// answers skill-gap questions. Queries are read-only and may run
// concurrently; Refit is the only writer.
type Engine struct {
	mu    sync.RWMutex
	state *fitted
}

// NewEngine fits the TF-IDF model over the catalog. It fails with an
// INVALID_PROFILE error when a catalog entry violates an invariant
// (empty required skills, unparseable or sub-1 experience floor).
func NewEngine(catalog []models.Career) (*Engine, error) {
	st, err := fit(catalog)
	if err != nil {
		return nil, err
	}
	return &Engine{state: st}, nil
}

func fit(catalog []models.Career) (*fitted, error) {
	const op = "Engine.Fit"

	if len(catalog) == 0 {
		return nil, utils.E(utils.CodeInvalidProfile, op, "catalog is empty", nil)
	}

	careers := make([]models.Career, len(catalog))
	copy(careers, catalog)

	expFloor := make([]float64, len(careers))
	byID := make(map[int]int, len(careers))
	docs := make([]string, len(careers))

	for i, c := range careers {
		if len(c.RequiredSkills) == 0 {
			return nil, utils.E(utils.CodeInvalidProfile, op,
				fmt.Sprintf("career %d has no required skills", c.ID), nil)
		}
		floor, err := parseExperienceFloor(c.ExperienceNeeded)
		if err != nil || floor < 1 {
			return nil, utils.E(utils.CodeInvalidProfile, op,
				fmt.Sprintf("career %d has invalid experience range %q", c.ID, c.ExperienceNeeded), err)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, utils.E(utils.CodeInvalidProfile, op,
				fmt.Sprintf("duplicate career id %d", c.ID), nil)
		}

		expFloor[i] = floor
		byID[c.ID] = i
		docs[i] = strings.Join(c.RequiredSkills, " ") + " " + c.Description + " " + c.Category
	}

	vec := NewVectorizer(DefaultMaxFeatures)
	vec.Fit(docs)

	return &fitted{
		careers:  careers,
		expFloor: expFloor,
		byID:     byID,
		vec:      vec,
		docs:     vec.TransformAll(docs),
	}, nil
}

// parseExperienceFloor extracts the lower bound from a range expression
// such as "3-5 years".
func parseExperienceFloor(s string) (float64, error) {
	low := strings.SplitN(s, "-", 2)[0]
	fields := strings.Fields(low)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty experience range")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

func (e *Engine) snapshot() *fitted {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Recommend scores every catalog career against the query and returns
// the top limit matches, highest first. Equal scores keep catalog
// order. limit <= 0 means DefaultTopN.
func (e *Engine) Recommend(q Query, limit int) []Match {
	st := e.snapshot()

	userText := strings.ToLower(q.Skills) + " " + strings.ToLower(q.Interests)
	qv := st.vec.Transform(userText)

	matches := make([]Match, len(st.careers))
	for i, c := range st.careers {
		sim := Cosine(qv, st.docs[i])
		matches[i] = Match{
			Career: c,
			Score:  combineScore(sim, st.expFloor[i], c.Education, q),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit <= 0 {
		limit = DefaultTopN
	}
	if limit > len(matches) {
		limit = len(matches)
	}
	return matches[:limit]
}

// combineScore blends cosine similarity with experience and education
// adjustments into a score in [0, 99.9], rounded to 2 decimals.
func combineScore(sim, expFloor float64, education string, q Query) float64 {
	base := sim * 100

	ratio := math.Min(float64(q.ExperienceYears)/expFloor, 1.5)
	expAdjustment := ratio * 20

	// Raw substring match against the catalog's education text. Fragile
	// for phrasings like "Bachelor's/Master's", but kept as the catalog
	// data was written for it.
	eduFactor := 0.8
	if strings.Contains(education, q.EducationLevel) {
		eduFactor = 1.0
	}

	score := math.Round((base*eduFactor+expAdjustment)*100) / 100
	return math.Min(score, maxScore)
}

// SkillGap compares the user's skills against one target career. The
// learning path is copied from the target, not computed.
func (e *Engine) SkillGap(userSkills []string, targetID int) (*SkillGapResult, error) {
	const op = "Engine.SkillGap"

	st := e.snapshot()

	idx, ok := st.byID[targetID]
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "career not found", nil)
	}
	target := st.careers[idx]

	required := toSet(NormalizeSkills(target.RequiredSkills))
	if len(required) == 0 {
		return nil, utils.E(utils.CodeInvalidProfile, op,
			fmt.Sprintf("career %d has no required skills", targetID), nil)
	}
	recommended := toSet(NormalizeSkills(target.RecommendedSkills))
	user := toSet(NormalizeSkills(userSkills))

	var existing, missingRequired, missingRecommended []string
	requiredHits := 0
	for s := range user {
		if _, ok := required[s]; ok {
			requiredHits++
			existing = append(existing, s)
			continue
		}
		if _, ok := recommended[s]; ok {
			existing = append(existing, s)
		}
	}
	for s := range required {
		if _, ok := user[s]; !ok {
			missingRequired = append(missingRequired, s)
		}
	}
	for s := range recommended {
		if _, ok := user[s]; !ok {
			missingRecommended = append(missingRecommended, s)
		}
	}
	sort.Strings(existing)
	sort.Strings(missingRequired)
	sort.Strings(missingRecommended)

	pct := float64(requiredHits) / float64(len(required)) * 100

	return &SkillGapResult{
		TargetCareer:       target.Title,
		MatchPercentage:    math.Round(pct*10) / 10,
		ExistingSkills:     existing,
		MissingRequired:    missingRequired,
		MissingRecommended: missingRecommended,
		LearningPath:       append([]string(nil), target.LearningPath...),
		TimeToProficiency:  timeToProficiency(len(missingRequired) + len(missingRecommended)),
	}, nil
}

// timeToProficiency buckets the total number of missing skills into a
// rough learning-time estimate.
func timeToProficiency(totalMissing int) string {
	switch {
	case totalMissing <= 2:
		return "1-3 months"
	case totalMissing <= 5:
		return "3-6 months"
	case totalMissing <= 8:
		return "6-12 months"
	default:
		return "1-2 years"
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

// Careers returns a copy of the catalog in canonical order.
func (e *Engine) Careers() []models.Career {
	st := e.snapshot()
	out := make([]models.Career, len(st.careers))
	copy(out, st.careers)
	return out
}

// Career returns the full profile for one id.
func (e *Engine) Career(id int) (*models.Career, error) {
	const op = "Engine.Career"

	st := e.snapshot()
	idx, ok := st.byID[id]
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "career not found", nil)
	}
	c := st.careers[idx]
	return &c, nil
}

// Size is the number of careers in the fitted catalog.
func (e *Engine) Size() int {
	return len(e.snapshot().careers)
}

// Dimension is the fitted vocabulary size.
func (e *Engine) Dimension() int {
	return e.snapshot().vec.Dimension()
}

// Matrix returns the catalog ids and a copy of the fitted document
// matrix rows, index-aligned.
func (e *Engine) Matrix() ([]int, [][]float64) {
	st := e.snapshot()
	ids := make([]int, len(st.careers))
	rows := make([][]float64, len(st.docs))
	for i, c := range st.careers {
		ids[i] = c.ID
		rows[i] = append([]float64(nil), st.docs[i]...)
	}
	return ids, rows
}

// Refit rebuilds the model over a new catalog. Readers see either the
// old or the new fitted state, never a mix.
func (e *Engine) Refit(catalog []models.Career) error {
	st, err := fit(catalog)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.state = st
	e.mu.Unlock()
	return nil
}
