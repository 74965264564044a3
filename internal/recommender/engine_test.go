package recommender

import (
	"sync"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/utils"
)

func testCatalog() []models.Career {
	return []models.Career{
		{
			ID:                1,
			Title:             "Data Scientist",
			Category:          "Technology",
			Description:       "Analyze complex data using statistical models and machine learning.",
			RequiredSkills:    pq.StringArray{"python", "sql", "statistics"},
			RecommendedSkills: pq.StringArray{"docker"},
			ExperienceNeeded:  "3-5 years",
			Education:         "Master's in Statistics",
			LearningPath:      pq.StringArray{"Python Basics", "Statistics", "ML Algorithms"},
		},
		{
			ID:                2,
			Title:             "Frontend Developer",
			Category:          "Technology",
			Description:       "Build responsive user interfaces for web applications.",
			RequiredSkills:    pq.StringArray{"javascript", "react", "css"},
			RecommendedSkills: pq.StringArray{"graphql"},
			ExperienceNeeded:  "2-4 years",
			Education:         "Bachelor's in Computer Science",
			LearningPath:      pq.StringArray{"HTML/CSS", "JavaScript", "React"},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testCatalog())
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsEmptyRequiredSkills(t *testing.T) {
	bad := testCatalog()
	bad[0].RequiredSkills = nil

	_, err := NewEngine(bad)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidProfile))
}

func TestNewEngineRejectsSubOneExperienceFloor(t *testing.T) {
	bad := testCatalog()
	bad[1].ExperienceNeeded = "0-2 years"

	_, err := NewEngine(bad)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidProfile))
}

func TestNewEngineRejectsUnparseableExperience(t *testing.T) {
	bad := testCatalog()
	bad[0].ExperienceNeeded = "senior level"

	_, err := NewEngine(bad)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidProfile))
}

func TestNewEngineRejectsDuplicateIDs(t *testing.T) {
	bad := testCatalog()
	bad[1].ID = bad[0].ID

	_, err := NewEngine(bad)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidProfile))
}

func TestParseExperienceFloor(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "3-5 years", want: 3},
		{in: "10-12 years", want: 10},
		{in: "2 years", want: 2},
		{in: "senior", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseExperienceFloor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRecommendScoreBounds(t *testing.T) {
	e := newTestEngine(t)

	queries := []Query{
		{Skills: "python, sql, statistics", ExperienceYears: 3, EducationLevel: "Master's"},
		{Skills: "python", ExperienceYears: 50, EducationLevel: "PhD"},
		{Interests: "building interactive web applications", ExperienceYears: 0},
		{Skills: "completely unrelated gibberish", ExperienceYears: 10},
	}

	for _, q := range queries {
		for _, m := range e.Recommend(q, len(testCatalog())) {
			assert.GreaterOrEqual(t, m.Score, 0.0)
			assert.LessOrEqual(t, m.Score, 99.9)
		}
	}
}

func scoreFor(t *testing.T, matches []Match, id int) float64 {
	t.Helper()
	for _, m := range matches {
		if m.Career.ID == id {
			return m.Score
		}
	}
	t.Fatalf("career %d not in results", id)
	return 0
}

func TestRecommendExperienceAdjustment(t *testing.T) {
	e := newTestEngine(t)

	q := Query{Skills: "python, sql, statistics", EducationLevel: "Master's"}

	q.ExperienceYears = 3
	with := scoreFor(t, e.Recommend(q, 2), 1)
	q.ExperienceYears = 0
	without := scoreFor(t, e.Recommend(q, 2), 1)

	// Experience floor is 3, so 3 years means ratio 1.0 and +20 points.
	assert.Greater(t, with, without)
	assert.InDelta(t, 20.0, with-without, 0.011)
}

func TestRecommendEducationFactor(t *testing.T) {
	e := newTestEngine(t)

	q := Query{Skills: "python, sql, statistics"}

	q.EducationLevel = "Master's"
	matched := scoreFor(t, e.Recommend(q, 2), 1)
	q.EducationLevel = "PhD"
	unmatched := scoreFor(t, e.Recommend(q, 2), 1)

	assert.Greater(t, matched, unmatched)
}

func TestRecommendStableTieOrder(t *testing.T) {
	twin := testCatalog()[0]
	twinCatalog := []models.Career{twin, twin}
	twinCatalog[1].ID = 2
	twinCatalog[1].Title = "Data Scientist II"

	e, err := NewEngine(twinCatalog)
	require.NoError(t, err)

	matches := e.Recommend(Query{Skills: "python statistics"}, 2)
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, 1, matches[0].Career.ID)
	assert.Equal(t, 2, matches[1].Career.ID)
}

func TestRecommendOutOfVocabularyQuery(t *testing.T) {
	e := newTestEngine(t)

	// No similarity, no experience, so every score collapses to zero.
	for _, m := range e.Recommend(Query{Skills: "xylophone"}, 2) {
		assert.Zero(t, m.Score)
	}
}

func TestRecommendDoesNotMutateCatalog(t *testing.T) {
	e := newTestEngine(t)

	before := e.Careers()
	_ = e.Recommend(Query{Skills: "python sql react", ExperienceYears: 5}, 2)
	after := e.Careers()

	assert.Equal(t, before, after)
}

func TestRecommendDefaultLimit(t *testing.T) {
	e := newTestEngine(t)

	matches := e.Recommend(Query{Skills: "python"}, 0)
	// Default is 5 but the catalog only has 2 entries.
	assert.Len(t, matches, 2)
}

func TestSkillGapScenario(t *testing.T) {
	cat := []models.Career{{
		ID:                7,
		Title:             "Backend Developer",
		Category:          "Technology",
		Description:       "Server-side development.",
		RequiredSkills:    pq.StringArray{"python", "sql"},
		RecommendedSkills: pq.StringArray{"docker"},
		ExperienceNeeded:  "2-4 years",
		Education:         "Bachelor's",
		LearningPath:      pq.StringArray{"Backend Fundamentals", "Databases"},
	}}
	e, err := NewEngine(cat)
	require.NoError(t, err)

	res, err := e.SkillGap([]string{"python"}, 7)
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer", res.TargetCareer)
	assert.Equal(t, 50.0, res.MatchPercentage)
	assert.Equal(t, []string{"python"}, res.ExistingSkills)
	assert.Equal(t, []string{"sql"}, res.MissingRequired)
	assert.Equal(t, []string{"docker"}, res.MissingRecommended)
	assert.Equal(t, []string{"Backend Fundamentals", "Databases"}, res.LearningPath)
	assert.Equal(t, "1-3 months", res.TimeToProficiency)
}

func TestSkillGapSupersetIsFullMatch(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.SkillGap([]string{"python", "sql", "statistics", "docker", "rust"}, 1)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.MatchPercentage)
	assert.Empty(t, res.MissingRequired)
	assert.Empty(t, res.MissingRecommended)
}

func TestSkillGapUnknownCareer(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.SkillGap([]string{"python"}, 999)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestSkillGapNormalizesUserSkills(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.SkillGap([]string{"  PYTHON ", "Sql", ""}, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sql"}, res.ExistingSkills)
	assert.Equal(t, []string{"statistics"}, res.MissingRequired)
}

func TestTimeToProficiencyBuckets(t *testing.T) {
	tests := []struct {
		missing int
		want    string
	}{
		{0, "1-3 months"},
		{2, "1-3 months"},
		{3, "3-6 months"},
		{5, "3-6 months"},
		{6, "6-12 months"},
		{8, "6-12 months"},
		{9, "1-2 years"},
		{20, "1-2 years"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timeToProficiency(tt.missing), "missing=%d", tt.missing)
	}
}

func TestRefitDeterminism(t *testing.T) {
	e := newTestEngine(t)

	q := Query{Skills: "python statistics react", ExperienceYears: 2, EducationLevel: "Bachelor's"}
	before := e.Recommend(q, 2)

	_, beforeMatrix := e.Matrix()
	require.NoError(t, e.Refit(testCatalog()))
	_, afterMatrix := e.Matrix()

	assert.Equal(t, beforeMatrix, afterMatrix)
	assert.Equal(t, before, e.Recommend(q, 2))
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	data, err := e.Snapshot()
	require.NoError(t, err)

	restored, err := Restore(data)
	require.NoError(t, err)

	q := Query{Skills: "python sql javascript", ExperienceYears: 4, EducationLevel: "Master's"}
	assert.Equal(t, e.Recommend(q, 2), restored.Recommend(q, 2))

	gapA, err := e.SkillGap([]string{"python"}, 1)
	require.NoError(t, err)
	gapB, err := restored.SkillGap([]string{"python"}, 1)
	require.NoError(t, err)
	assert.Equal(t, gapA, gapB)
}

func TestRestoreReplacesFittedState(t *testing.T) {
	e := newTestEngine(t)
	data, err := e.Snapshot()
	require.NoError(t, err)

	other, err := NewEngine(testCatalog()[:1])
	require.NoError(t, err)
	require.NoError(t, other.Restore(data))

	assert.Equal(t, 2, other.Size())
	q := Query{Skills: "javascript react", ExperienceYears: 2}
	assert.Equal(t, e.Recommend(q, 2), other.Recommend(q, 2))
}

func TestRestoreRejectsGarbage(t *testing.T) {
	_, err := Restore([]byte("not json"))
	assert.Error(t, err)
}

func TestCareerLookup(t *testing.T) {
	e := newTestEngine(t)

	c, err := e.Career(2)
	require.NoError(t, err)
	assert.Equal(t, "Frontend Developer", c.Title)

	_, err = e.Career(42)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestConcurrentQueriesAndRefit(t *testing.T) {
	e := newTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				matches := e.Recommend(Query{Skills: "python react", ExperienceYears: 2}, 2)
				if len(matches) != 2 {
					t.Errorf("got %d matches", len(matches))
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 10; j++ {
			if err := e.Refit(testCatalog()); err != nil {
				t.Errorf("refit: %v", err)
				return
			}
		}
	}()
	wg.Wait()
}
