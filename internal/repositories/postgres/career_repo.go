package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/careerpath/backend/internal/models"
)

type CareerRepository interface {
	// Migrate creates the careers table when missing.
	Migrate() error
	// SeedIfEmpty inserts the given rows when the table has no careers.
	SeedIfEmpty(ctx context.Context, rows []models.Career) error
	// LoadAll returns the catalog ordered by id. Ordering matters: it is
	// the canonical catalog order the engine aligns its matrix rows to.
	LoadAll(ctx context.Context) ([]models.Career, error)
}

type careerRepo struct {
	db *gorm.DB
}

func NewCareerRepo(db *gorm.DB) CareerRepository {
	return &careerRepo{db: db}
}

func (r *careerRepo) Migrate() error {
	return r.db.AutoMigrate(&models.Career{})
}

func (r *careerRepo) SeedIfEmpty(ctx context.Context, rows []models.Career) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Career{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *careerRepo) LoadAll(ctx context.Context) ([]models.Career, error) {
	var rows []models.Career
	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}
