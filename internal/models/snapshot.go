package models

import (
	"time"

	"gorm.io/datatypes"
)

// ModelSnapshot persists one serialized engine state (vocabulary, IDF
// weights, document matrix, catalog) so a process can restore a fitted
// model without re-reading the catalog.
type ModelSnapshot struct {
	ID        string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Payload   datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`
	Careers   int            `gorm:"column:careers;type:integer" json:"careers"`
	Terms     int            `gorm:"column:terms;type:integer" json:"terms"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (ModelSnapshot) TableName() string { return "model_snapshots" }
