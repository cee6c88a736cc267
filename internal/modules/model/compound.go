package model

import (
	"time"

	"github.com/google/uuid"
)

// FinishingStatus of a compound's units at delivery.
type FinishingStatus string

const (
	FinishingFinished     FinishingStatus = "Finished"
	FinishingSemiFinished FinishingStatus = "SemiFinished"
	FinishingCoreAndShell FinishingStatus = "CoreAndShell"
)

type Compound struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"type:text;not null" json:"name"`
	Slug            string          `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Location        string          `gorm:"type:text;not null" json:"location"`
	Description     string          `gorm:"type:text" json:"description"`
	DeliveryYear    int             `gorm:"not null" json:"delivery_year"`
	FinishingStatus FinishingStatus `gorm:"type:text;not null" json:"finishing_status"`
	DeveloperID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"developer_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Compound <-> Developer
	Developer *Developer `gorm:"foreignKey:DeveloperID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"developer,omitempty"`

	// Compound <-> Unit
	Units []Unit `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"units,omitempty"`

	// Populated by list queries only, never persisted.
	UnitsCount int64 `gorm:"->;-:migration" json:"units_count,omitempty"`
}

func (Compound) TableName() string { return "compounds" }
