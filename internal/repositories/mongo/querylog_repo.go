package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerpath/backend/internal/models"
)

type QueryLogRepository interface {
	Insert(ctx context.Context, entry *models.QueryLog) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error)
}

type queryLogRepo struct {
	col *mongo.Collection
}

func NewQueryLogRepo(db *mongo.Database) QueryLogRepository {
	return &queryLogRepo{col: db.Collection("query_logs")}
}

func (r *queryLogRepo) Insert(ctx context.Context, entry *models.QueryLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *queryLogRepo) ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.QueryLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
