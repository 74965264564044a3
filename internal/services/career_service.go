package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/careerpath/backend/internal/cache"
	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/recommender"
	"github.com/careerpath/backend/internal/utils"
	"github.com/careerpath/backend/internal/workers"
)

const (
	recommendCacheTTL     = 5 * time.Minute
	summaryDescriptionMax = 100
)

type CareerService interface {
	Recommend(ctx context.Context, q recommender.Query, limit int, requestID string) ([]recommender.Match, error)
	SkillGap(ctx context.Context, userSkills []string, targetCareerID int) (*recommender.SkillGapResult, error)
	ListCareers(ctx context.Context) ([]models.CareerSummary, error)
	GetCareer(ctx context.Context, id int) (*models.Career, error)
	CatalogSize(ctx context.Context) int
}

type careerService struct {
	engine *recommender.Engine
	cache  cache.Cache   // nil: caching off
	rdb    *redis.Client // nil: no event stream
	log    *logrus.Logger
}

func NewCareerService(engine *recommender.Engine, c cache.Cache, rdb *redis.Client, log *logrus.Logger) CareerService {
	if log == nil {
		log = logrus.New()
	}
	return &careerService{engine: engine, cache: c, rdb: rdb, log: log}
}

func (s *careerService) Recommend(ctx context.Context, q recommender.Query, limit int, requestID string) ([]recommender.Match, error) {
	const op = "CareerService.Recommend"

	if strings.TrimSpace(q.Skills) == "" && strings.TrimSpace(q.Interests) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skills or interests are required", nil)
	}
	if q.ExperienceYears < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "experience_years must not be negative", nil)
	}

	key := recommendCacheKey(q, limit)
	if s.cache != nil {
		var cached []recommender.Match
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
			s.log.WithError(err).Warn("recommendation cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	matches := s.engine.Recommend(q, limit)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, matches, recommendCacheTTL); err != nil {
			s.log.WithError(err).Warn("recommendation cache write failed")
		}
	}

	s.publishEvent(ctx, q, matches, requestID)

	return matches, nil
}

// publishEvent pushes the request onto the query-log stream. Best
// effort: a down Redis never fails a recommendation.
func (s *careerService) publishEvent(ctx context.Context, q recommender.Query, matches []recommender.Match, requestID string) {
	if s.rdb == nil {
		return
	}

	ids := make([]int, len(matches))
	scores := make([]float64, len(matches))
	for i, m := range matches {
		ids[i] = m.Career.ID
		scores[i] = m.Score
	}
	idsJSON, _ := json.Marshal(ids)
	scoresJSON, _ := json.Marshal(scores)

	err := s.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: workers.DefaultStream,
		Values: map[string]any{
			"log_id":           uuid.NewString(),
			"request_id":       requestID,
			"skills":           q.Skills,
			"interests":        q.Interests,
			"experience_years": q.ExperienceYears,
			"education_level":  q.EducationLevel,
			"top_career_ids":   string(idsJSON),
			"top_scores":       string(scoresJSON),
			"created_at":       time.Now().UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		s.log.WithError(err).Warn("failed to publish recommendation event")
	}
}

func recommendCacheKey(q recommender.Query, limit int) string {
	// Skills and interests are lowercased by the engine, so the key can
	// fold their case. Education matching is case-sensitive and must not
	// be folded here or distinct queries collide on one entry.
	raw := fmt.Sprintf("%s|%s|%d|%s|%d",
		strings.ToLower(strings.TrimSpace(q.Skills)),
		strings.ToLower(strings.TrimSpace(q.Interests)),
		q.ExperienceYears,
		strings.TrimSpace(q.EducationLevel),
		limit,
	)
	sum := sha256.Sum256([]byte(raw))
	return "recommend:" + hex.EncodeToString(sum[:])
}

func (s *careerService) SkillGap(ctx context.Context, userSkills []string, targetCareerID int) (*recommender.SkillGapResult, error) {
	const op = "CareerService.SkillGap"

	if len(recommender.NormalizeSkills(userSkills)) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skills are required", nil)
	}

	return s.engine.SkillGap(userSkills, targetCareerID)
}

func (s *careerService) ListCareers(ctx context.Context) ([]models.CareerSummary, error) {
	careers := s.engine.Careers()
	out := make([]models.CareerSummary, len(careers))
	for i, c := range careers {
		out[i] = models.CareerSummary{
			ID:          c.ID,
			Title:       c.Title,
			Category:    c.Category,
			Description: truncate(c.Description, summaryDescriptionMax),
		}
	}
	return out, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func (s *careerService) GetCareer(ctx context.Context, id int) (*models.Career, error) {
	return s.engine.Career(id)
}

func (s *careerService) CatalogSize(ctx context.Context) int {
	return s.engine.Size()
}
