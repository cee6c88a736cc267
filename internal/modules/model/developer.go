package model

import (
	"time"

	"github.com/google/uuid"
)

type Developer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Developer <-> Compound
	Compounds []Compound `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"compounds,omitempty"`

	// Populated by list queries only, never persisted.
	CompoundsCount int64 `gorm:"->;-:migration" json:"compounds_count,omitempty"`
}

func (Developer) TableName() string { return "developers" }
