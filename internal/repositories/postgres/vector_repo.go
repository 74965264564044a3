package postgres

import (
	"context"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/careerpath/backend/internal/models"
)

type VectorRepository interface {
	Migrate() error
	// ReplaceAll swaps the stored document vectors for a freshly fitted
	// matrix, keyed by career id.
	ReplaceAll(ctx context.Context, ids []int, matrix [][]float64) error
}

type vectorRepo struct {
	db *gorm.DB
}

func NewVectorRepo(db *gorm.DB) VectorRepository {
	return &vectorRepo{db: db}
}

func (r *vectorRepo) Migrate() error {
	return r.db.AutoMigrate(&models.CareerVector{})
}

func (r *vectorRepo) ReplaceAll(ctx context.Context, ids []int, matrix [][]float64) error {
	now := time.Now().UTC()
	rows := make([]models.CareerVector, len(ids))
	for i, id := range ids {
		vec := make([]float32, len(matrix[i]))
		for j, v := range matrix[i] {
			vec[j] = float32(v)
		}
		rows[i] = models.CareerVector{
			CareerID: id,
			Vector:   pgvector.NewVector(vec),
			FittedAt: now,
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CareerVector{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
}
