package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentPlan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"unit_id"`
	DownPayment   float64   `gorm:"not null" json:"down_payment"`
	Installment   float64   `gorm:"not null" json:"installment"`
	DurationYears int       `gorm:"not null" json:"duration_years"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Unit *Unit `gorm:"foreignKey:UnitID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (PaymentPlan) TableName() string { return "payment_plans" }
