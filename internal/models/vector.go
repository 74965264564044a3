package models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// CareerVector stores one career's fitted TF-IDF document vector. Rows
// are rewritten wholesale after each fit so the table always reflects
// the current model generation.
type CareerVector struct {
	CareerID int             `gorm:"column:career_id;primaryKey" json:"career_id"`
	Vector   pgvector.Vector `gorm:"column:vector;type:vector" json:"vector"`
	FittedAt time.Time       `gorm:"column:fitted_at;type:timestamptz" json:"fitted_at"`
}

func (CareerVector) TableName() string { return "career_vectors" }
