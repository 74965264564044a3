package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/careerpath/backend/internal/cache"
	"github.com/careerpath/backend/internal/catalog"
	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/recommender"
	mongorepo "github.com/careerpath/backend/internal/repositories/mongo"
	pgrepo "github.com/careerpath/backend/internal/repositories/postgres"
	"github.com/careerpath/backend/internal/storage"
	"github.com/careerpath/backend/internal/utils"
)

// SnapshotInfo describes one persisted engine snapshot.
type SnapshotInfo struct {
	StoredPath string `json:"stored_path"`
	Careers    int    `json:"careers"`
	Terms      int    `json:"terms"`
}

// ModelService owns the engine's write side: catalog reload, refit and
// snapshot persistence. Refit serializes against in-flight queries via
// the engine's own lock.
type ModelService interface {
	Refit(ctx context.Context) (careers int, err error)
	Snapshot(ctx context.Context) (*SnapshotInfo, error)
	// Restore swaps the engine back to a stored snapshot. An empty name
	// means the latest persisted snapshot row.
	Restore(ctx context.Context, name string) (*SnapshotInfo, error)
	History(ctx context.Context, limit int) ([]models.QueryLog, error)
}

type modelService struct {
	engine    *recommender.Engine
	careers   pgrepo.CareerRepository   // nil: embedded catalog only
	vectors   pgrepo.VectorRepository   // nil: vectors not persisted
	snapshots pgrepo.SnapshotRepository // nil: snapshot rows not persisted
	logs      mongorepo.QueryLogRepository
	store     storage.SnapshotStore
	cache     cache.Cache // nil: nothing to invalidate
	log       *logrus.Logger
}

func NewModelService(
	engine *recommender.Engine,
	careers pgrepo.CareerRepository,
	vectors pgrepo.VectorRepository,
	snapshots pgrepo.SnapshotRepository,
	logs mongorepo.QueryLogRepository,
	store storage.SnapshotStore,
	c cache.Cache,
	log *logrus.Logger,
) ModelService {
	if log == nil {
		log = logrus.New()
	}
	return &modelService{
		engine:    engine,
		careers:   careers,
		vectors:   vectors,
		snapshots: snapshots,
		logs:      logs,
		store:     store,
		cache:     c,
		log:       log,
	}
}

// invalidateRecommendations drops cached recommendation entries after
// the model changes, so stale scores never outlive a refit or restore.
func (s *modelService) invalidateRecommendations(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "recommend:*"); err != nil {
		s.log.WithError(err).Warn("failed to invalidate recommendation cache")
	}
}

func (s *modelService) Refit(ctx context.Context) (int, error) {
	const op = "ModelService.Refit"

	rows := catalog.Seed()
	if s.careers != nil {
		loaded, err := s.careers.LoadAll(ctx)
		if err != nil {
			return 0, utils.E(utils.CodeUnavailable, op, "failed to load catalog", err)
		}
		if len(loaded) > 0 {
			rows = loaded
		}
	}

	if err := s.engine.Refit(rows); err != nil {
		return 0, err
	}

	if s.vectors != nil {
		ids, matrix := s.engine.Matrix()
		if err := s.vectors.ReplaceAll(ctx, ids, matrix); err != nil {
			s.log.WithError(err).Warn("failed to persist fitted vectors")
		}
	}

	s.invalidateRecommendations(ctx)

	s.log.WithField("careers", len(rows)).Info("model refitted")
	return len(rows), nil
}

func (s *modelService) Snapshot(ctx context.Context) (*SnapshotInfo, error) {
	const op = "ModelService.Snapshot"

	data, err := s.engine.Snapshot()
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("model-%s.json", time.Now().UTC().Format("20060102T150405Z"))
	path, err := s.store.Put(ctx, name, data)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to store snapshot", err)
	}

	info := &SnapshotInfo{
		StoredPath: path,
		Careers:    s.engine.Size(),
		Terms:      s.engine.Dimension(),
	}

	if s.snapshots != nil {
		if _, err := s.snapshots.Insert(ctx, data, info.Careers, info.Terms); err != nil {
			s.log.WithError(err).Warn("failed to persist snapshot row")
		}
	}

	return info, nil
}

func (s *modelService) Restore(ctx context.Context, name string) (*SnapshotInfo, error) {
	const op = "ModelService.Restore"

	var data []byte
	source := name
	switch {
	case name != "":
		b, err := s.store.Get(ctx, name)
		if err != nil {
			return nil, utils.E(utils.CodeNotFound, op, "snapshot not found", err)
		}
		data = b
	case s.snapshots != nil:
		row, err := s.snapshots.Latest(ctx)
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no snapshots recorded", err)
		}
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to load snapshot row", err)
		}
		data = []byte(row.Payload)
		source = "snapshot/" + row.ID
	default:
		return nil, utils.E(utils.CodeInvalidArgument, op, "snapshot name is required", nil)
	}

	if err := s.engine.Restore(data); err != nil {
		return nil, err
	}
	s.invalidateRecommendations(ctx)

	s.log.WithField("source", source).Info("model restored from snapshot")
	return &SnapshotInfo{
		StoredPath: source,
		Careers:    s.engine.Size(),
		Terms:      s.engine.Dimension(),
	}, nil
}

func (s *modelService) History(ctx context.Context, limit int) ([]models.QueryLog, error) {
	const op = "ModelService.History"

	if s.logs == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "query log is not configured", nil)
	}
	entries, err := s.logs.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read query log", err)
	}
	return entries, nil
}
