package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PropertyType of a sellable unit.
type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyVilla     PropertyType = "Villa"
	PropertyDuplex    PropertyType = "Duplex"
	PropertyPenthouse PropertyType = "Penthouse"
	PropertyChalet    PropertyType = "Chalet"
	PropertyStudio    PropertyType = "Studio"
	PropertyTownhouse PropertyType = "Townhouse"
)

// PropertyTypes lists every recognized property type.
var PropertyTypes = []PropertyType{
	PropertyApartment,
	PropertyVilla,
	PropertyDuplex,
	PropertyPenthouse,
	PropertyChalet,
	PropertyStudio,
	PropertyTownhouse,
}

// ValidPropertyType reports whether s is a recognized property type.
func ValidPropertyType(s string) bool {
	for _, t := range PropertyTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// SaleType distinguishes developer sales from resales.
type SaleType string

const (
	SaleDeveloper SaleType = "DeveloperSale"
	SaleResale    SaleType = "Resale"
)

type Unit struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string                         `gorm:"type:text;not null" json:"title"`
	ReferenceNumber string                         `gorm:"type:text;not null;uniqueIndex" json:"reference_number"`
	UnitNumber      string                         `gorm:"type:text;not null" json:"unit_number"`
	Price           float64                        `gorm:"not null" json:"price"`
	Bedrooms        int                            `gorm:"not null" json:"bedrooms"`
	UnitArea        float64                        `gorm:"not null" json:"unit_area"`
	PropertyType    PropertyType                   `gorm:"type:text;not null;index" json:"property_type"`
	Amenities       datatypes.JSONSlice[string]    `json:"amenities"`
	SaleType        SaleType                       `gorm:"type:text;not null" json:"sale_type"`
	GalleryImages   datatypes.JSONSlice[string]    `json:"gallery_images"`
	DeliveryYear    int                            `gorm:"not null" json:"delivery_year"`
	CompoundID      uuid.UUID                      `gorm:"type:uuid;not null;index" json:"compound_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Unit <-> Compound
	Compound *Compound `gorm:"foreignKey:CompoundID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"compound,omitempty"`

	// Unit <-> PaymentPlan (one plan per unit)
	PaymentPlan *PaymentPlan `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"payment_plan,omitempty"`
}

func (Unit) TableName() string { return "units" }
