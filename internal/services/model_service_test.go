package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/backend/internal/catalog"
	"github.com/careerpath/backend/internal/recommender"
	"github.com/careerpath/backend/internal/storage"
	"github.com/careerpath/backend/internal/utils"
)

func newLocalStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	engine, err := recommender.NewEngine(catalog.Seed())
	require.NoError(t, err)
	svc := NewModelService(engine, nil, nil, nil, nil, newLocalStore(t), nil, nil)

	q := recommender.Query{Skills: "python, machine learning", ExperienceYears: 2}
	before := engine.Recommend(q, 3)

	info, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	// Drift the live model, then restore the stored snapshot by name.
	require.NoError(t, engine.Refit(catalog.Seed()[:4]))
	require.Equal(t, 4, engine.Size())

	restored, err := svc.Restore(context.Background(), filepath.Base(info.StoredPath))
	require.NoError(t, err)

	assert.Equal(t, 8, restored.Careers)
	assert.Equal(t, 8, engine.Size())
	assert.Equal(t, before, engine.Recommend(q, 3))
}

func TestRestoreWithoutSource(t *testing.T) {
	engine, err := recommender.NewEngine(catalog.Seed())
	require.NoError(t, err)
	svc := NewModelService(engine, nil, nil, nil, nil, newLocalStore(t), nil, nil)

	// No name and no snapshot rows configured.
	_, err = svc.Restore(context.Background(), "")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Restore(context.Background(), "missing.json")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestRefitInvalidatesRecommendationCache(t *testing.T) {
	engine, err := recommender.NewEngine(catalog.Seed())
	require.NoError(t, err)
	mem := newMemoryCache()

	careerSvc := NewCareerService(engine, mem, nil, nil)
	modelSvc := NewModelService(engine, nil, nil, nil, nil, newLocalStore(t), mem, nil)

	_, err = careerSvc.Recommend(context.Background(), recommender.Query{
		Skills: "python, sql", ExperienceYears: 2,
	}, 0, "")
	require.NoError(t, err)
	require.NotEmpty(t, mem.entries)

	_, err = modelSvc.Refit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mem.entries)
}

func TestRestoreInvalidatesRecommendationCache(t *testing.T) {
	engine, err := recommender.NewEngine(catalog.Seed())
	require.NoError(t, err)
	mem := newMemoryCache()
	store := newLocalStore(t)

	careerSvc := NewCareerService(engine, mem, nil, nil)
	modelSvc := NewModelService(engine, nil, nil, nil, nil, store, mem, nil)

	info, err := modelSvc.Snapshot(context.Background())
	require.NoError(t, err)

	_, err = careerSvc.Recommend(context.Background(), recommender.Query{
		Skills: "javascript, react", ExperienceYears: 1,
	}, 0, "")
	require.NoError(t, err)
	require.NotEmpty(t, mem.entries)

	_, err = modelSvc.Restore(context.Background(), filepath.Base(info.StoredPath))
	require.NoError(t, err)
	assert.Empty(t, mem.entries)
}
