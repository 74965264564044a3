package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/careerpath/backend/internal/models"
	"github.com/careerpath/backend/internal/utils"
)

type SnapshotRepository interface {
	Migrate() error
	Insert(ctx context.Context, payload []byte, careers, terms int) (*models.ModelSnapshot, error)
	// Latest returns the most recent snapshot row.
	Latest(ctx context.Context) (*models.ModelSnapshot, error)
}

type snapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) Migrate() error {
	return r.db.AutoMigrate(&models.ModelSnapshot{})
}

func (r *snapshotRepo) Insert(ctx context.Context, payload []byte, careers, terms int) (*models.ModelSnapshot, error) {
	row := &models.ModelSnapshot{
		ID:        uuid.NewString(),
		Payload:   datatypes.JSON(payload),
		Careers:   careers,
		Terms:     terms,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*models.ModelSnapshot, error) {
	var row models.ModelSnapshot
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}
