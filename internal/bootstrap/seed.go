package bootstrap

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
)

// Seed replaces the catalog with the demo dataset. IDs are fixed so
// re-seeding is idempotent and documentation examples stay valid.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	devEmaar := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	devDamac := uuid.MustParse("550e8400-e29b-41d4-a716-446655440002")
	devSobha := uuid.MustParse("550e8400-e29b-41d4-a716-446655440003")

	cmpDowntown := uuid.MustParse("660e8400-e29b-41d4-a716-446655440001")
	cmpPalmVista := uuid.MustParse("660e8400-e29b-41d4-a716-446655440002")
	cmpMarina := uuid.MustParse("660e8400-e29b-41d4-a716-446655440003")
	cmpBusinessBay := uuid.MustParse("660e8400-e29b-41d4-a716-446655440004")

	developers := []model.Developer{
		{ID: devEmaar, Name: "Emaar Properties", Description: "Leading real estate developer in the UAE"},
		{ID: devDamac, Name: "Damac Properties", Description: "Premium property developer"},
		{ID: devSobha, Name: "Sobha Realty", Description: "Luxury real estate developer"},
	}

	compounds := []model.Compound{
		{
			ID: cmpDowntown, Name: "Downtown Views", Slug: "downtown-views",
			Location: "Downtown Dubai", Description: "Luxury apartments with stunning city views",
			DeliveryYear: 2024, FinishingStatus: model.FinishingFinished, DeveloperID: devEmaar,
		},
		{
			ID: cmpPalmVista, Name: "Palm Vista", Slug: "palm-vista",
			Location: "Palm Jumeirah", Description: "Exclusive beachfront residences",
			DeliveryYear: 2025, FinishingStatus: model.FinishingSemiFinished, DeveloperID: devDamac,
		},
		{
			ID: cmpMarina, Name: "Marina Heights", Slug: "marina-heights",
			Location: "Dubai Marina", Description: "Modern apartments with marina views",
			DeliveryYear: 2024, FinishingStatus: model.FinishingFinished, DeveloperID: devSobha,
		},
		{
			ID: cmpBusinessBay, Name: "Business Bay Residences", Slug: "business-bay-residences",
			Location: "Business Bay", Description: "Contemporary urban living",
			DeliveryYear: 2025, FinishingStatus: model.FinishingCoreAndShell, DeveloperID: devEmaar,
		},
	}

	units := []model.Unit{
		{
			ID:    uuid.MustParse("770e8400-e29b-41d4-a716-446655440001"),
			Title: "Luxury 2BR Apartment", ReferenceNumber: "REF001", UnitNumber: "A-101",
			Price: 2500000, Bedrooms: 2, UnitArea: 120.5,
			PropertyType: model.PropertyApartment, SaleType: model.SaleDeveloper,
			Amenities: []string{"Pool", "Gym", "Parking", "Balcony"},
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1560448204-603b3fc33ddc?w=800&h=600&fit=crop",
			},
			DeliveryYear: 2024, CompoundID: cmpDowntown,
		},
		{
			ID:    uuid.MustParse("770e8400-e29b-41d4-a716-446655440002"),
			Title: "Premium 3BR Villa", ReferenceNumber: "REF002", UnitNumber: "V-201",
			Price: 4500000, Bedrooms: 3, UnitArea: 250,
			PropertyType: model.PropertyVilla, SaleType: model.SaleDeveloper,
			Amenities: []string{"Private Pool", "Garden", "Garage", "Maid Room"},
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop",
			},
			DeliveryYear: 2025, CompoundID: cmpPalmVista,
		},
		{
			ID:    uuid.MustParse("770e8400-e29b-41d4-a716-446655440003"),
			Title: "Modern Studio Apartment", ReferenceNumber: "REF003", UnitNumber: "S-301",
			Price: 1200000, Bedrooms: 0, UnitArea: 65,
			PropertyType: model.PropertyStudio, SaleType: model.SaleResale,
			Amenities: []string{"Gym", "Pool", "24/7 Security"},
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
			},
			DeliveryYear: 2024, CompoundID: cmpMarina,
		},
		{
			ID:    uuid.MustParse("770e8400-e29b-41d4-a716-446655440004"),
			Title: "Luxury Penthouse Suite", ReferenceNumber: "REF004", UnitNumber: "P-401",
			Price: 8500000, Bedrooms: 4, UnitArea: 400,
			PropertyType: model.PropertyPenthouse, SaleType: model.SaleDeveloper,
			Amenities: []string{"Private Terrace", "Jacuzzi", "Wine Cellar", "Home Theater"},
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
			},
			DeliveryYear: 2025, CompoundID: cmpDowntown,
		},
		{
			ID:    uuid.MustParse("770e8400-e29b-41d4-a716-446655440005"),
			Title: "1BR Marina View", ReferenceNumber: "REF005", UnitNumber: "M-501",
			Price: 1800000, Bedrooms: 1, UnitArea: 85,
			PropertyType: model.PropertyApartment, SaleType: model.SaleDeveloper,
			Amenities: []string{"Marina View", "Balcony", "Gym", "Pool"},
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop",
			},
			DeliveryYear: 2024, CompoundID: cmpMarina,
		},
		{
			ID:    uuid.MustParse("770e8400-e29b-41d4-a716-446655440006"),
			Title: "Elegant Townhouse", ReferenceNumber: "REF006", UnitNumber: "T-601",
			Price: 3200000, Bedrooms: 3, UnitArea: 180,
			PropertyType: model.PropertyTownhouse, SaleType: model.SaleResale,
			Amenities: []string{"Garden", "Garage", "Balcony", "Storage"},
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop",
			},
			DeliveryYear: 2025, CompoundID: cmpBusinessBay,
		},
	}

	plans := []model.PaymentPlan{
		{ID: uuid.MustParse("880e8400-e29b-41d4-a716-446655440001"), UnitID: units[0].ID, DownPayment: 500000, Installment: 166667, DurationYears: 12},
		{ID: uuid.MustParse("880e8400-e29b-41d4-a716-446655440002"), UnitID: units[1].ID, DownPayment: 900000, Installment: 300000, DurationYears: 12},
		{ID: uuid.MustParse("880e8400-e29b-41d4-a716-446655440003"), UnitID: units[2].ID, DownPayment: 240000, Installment: 80000, DurationYears: 12},
		{ID: uuid.MustParse("880e8400-e29b-41d4-a716-446655440004"), UnitID: units[3].ID, DownPayment: 1700000, Installment: 566667, DurationYears: 12},
		{ID: uuid.MustParse("880e8400-e29b-41d4-a716-446655440005"), UnitID: units[4].ID, DownPayment: 360000, Installment: 120000, DurationYears: 12},
		{ID: uuid.MustParse("880e8400-e29b-41d4-a716-446655440006"), UnitID: units[5].ID, DownPayment: 640000, Installment: 213333, DurationYears: 12},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete children first to respect foreign keys.
		for _, table := range []string{"payment_plans", "units", "compounds", "developers"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&developers).Error; err != nil {
			return err
		}
		if err := tx.Create(&compounds).Error; err != nil {
			return err
		}
		if err := tx.Create(&units).Error; err != nil {
			return err
		}
		if err := tx.Create(&plans).Error; err != nil {
			return err
		}

		log.Info("seeded demo catalog",
			zap.Int("developers", len(developers)),
			zap.Int("compounds", len(compounds)),
			zap.Int("units", len(units)),
			zap.Int("payment_plans", len(plans)),
		)
		return nil
	})
}
