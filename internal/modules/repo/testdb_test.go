package repo

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OMAR684257931/nawy-apartments/internal/infra/db"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
)

var testDBSeq int

// setupTestDB opens an isolated in-memory sqlite database and runs the
// migrations. The shared-cache DSN keeps every pooled connection on the
// same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}

// fixtures mirrors the demo dataset: three developers, four compounds and
// six units, two of which carry payment plans.
type fixtures struct {
	Emaar, Palm, Sodic             model.Developer
	PalmVista, Marina, Lake, Hills model.Compound
	Units                          []model.Unit
}

func seedFixtures(t *testing.T, gdb *gorm.DB) fixtures {
	t.Helper()

	var f fixtures
	f.Emaar = model.Developer{ID: uuid.New(), Name: "Emaar Misr", Description: "Large mixed-use developments"}
	f.Palm = model.Developer{ID: uuid.New(), Name: "Palm Hills", Description: "Residential communities"}
	f.Sodic = model.Developer{ID: uuid.New(), Name: "Sodic", Description: "West Cairo projects"}
	require.NoError(t, gdb.Create([]*model.Developer{&f.Emaar, &f.Palm, &f.Sodic}).Error)

	f.PalmVista = model.Compound{
		ID: uuid.New(), Name: "Palm Vista", Slug: "palm-vista",
		Location: "Downtown Dubai", DeliveryYear: 2026,
		FinishingStatus: model.FinishingFinished, DeveloperID: f.Emaar.ID,
	}
	f.Marina = model.Compound{
		ID: uuid.New(), Name: "Marina Heights", Slug: "marina-heights",
		Location: "Dubai Marina", DeliveryYear: 2025,
		FinishingStatus: model.FinishingSemiFinished, DeveloperID: f.Emaar.ID,
	}
	f.Lake = model.Compound{
		ID: uuid.New(), Name: "Lake View", Slug: "lake-view",
		Location: "New Cairo", DeliveryYear: 2027,
		FinishingStatus: model.FinishingCoreAndShell, DeveloperID: f.Palm.ID,
	}
	f.Hills = model.Compound{
		ID: uuid.New(), Name: "West Hills", Slug: "west-hills",
		Location: "Sheikh Zayed", DeliveryYear: 2026,
		FinishingStatus: model.FinishingFinished, DeveloperID: f.Sodic.ID,
	}
	require.NoError(t, gdb.Create([]*model.Compound{&f.PalmVista, &f.Marina, &f.Lake, &f.Hills}).Error)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.Units = []model.Unit{
		{
			ID: uuid.New(), Title: "Luxury 2BR Apartment", ReferenceNumber: "NAWY-001",
			UnitNumber: "A-101", Price: 2500000, Bedrooms: 2, UnitArea: 120,
			PropertyType: model.PropertyApartment, SaleType: model.SaleDeveloper,
			Amenities:    []string{"Pool", "Gym"},
			DeliveryYear: 2026, CompoundID: f.PalmVista.ID, CreatedAt: base,
		},
		{
			ID: uuid.New(), Title: "Premium 3BR Villa", ReferenceNumber: "NAWY-002",
			UnitNumber: "V-12", Price: 8000000, Bedrooms: 3, UnitArea: 300,
			PropertyType: model.PropertyVilla, SaleType: model.SaleDeveloper,
			Amenities:    []string{"Garden", "Pool", "Security"},
			DeliveryYear: 2026, CompoundID: f.PalmVista.ID, CreatedAt: base.Add(1 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "Cozy Studio", ReferenceNumber: "NAWY-003",
			UnitNumber: "S-07", Price: 900000, Bedrooms: 0, UnitArea: 45,
			PropertyType: model.PropertyStudio, SaleType: model.SaleResale,
			Amenities:    []string{"Gym"},
			DeliveryYear: 2025, CompoundID: f.Marina.ID, CreatedAt: base.Add(2 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "Marina 2BR Duplex", ReferenceNumber: "NAWY-004",
			UnitNumber: "D-22", Price: 4200000, Bedrooms: 2, UnitArea: 180,
			PropertyType: model.PropertyDuplex, SaleType: model.SaleDeveloper,
			Amenities:    []string{"Sea View", "Parking"},
			DeliveryYear: 2025, CompoundID: f.Marina.ID, CreatedAt: base.Add(3 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "Lakeside Townhouse", ReferenceNumber: "NAWY-005",
			UnitNumber: "T-03", Price: 5500000, Bedrooms: 4, UnitArea: 260,
			PropertyType: model.PropertyTownhouse, SaleType: model.SaleDeveloper,
			Amenities:    []string{"Garden", "Clubhouse"},
			DeliveryYear: 2027, CompoundID: f.Lake.ID, CreatedAt: base.Add(4 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "Hilltop Penthouse", ReferenceNumber: "NAWY-006",
			UnitNumber: "P-01", Price: 12000000, Bedrooms: 3, UnitArea: 400,
			PropertyType: model.PropertyPenthouse, SaleType: model.SaleResale,
			Amenities:    []string{"Roof Terrace", "Pool"},
			DeliveryYear: 2026, CompoundID: f.Hills.ID, CreatedAt: base.Add(5 * time.Hour),
		},
	}
	for i := range f.Units {
		require.NoError(t, gdb.Create(&f.Units[i]).Error)
	}

	plans := []model.PaymentPlan{
		{ID: uuid.New(), UnitID: f.Units[1].ID, DownPayment: 900000, Installment: 300000, DurationYears: 12},
		{ID: uuid.New(), UnitID: f.Units[4].ID, DownPayment: 550000, Installment: 200000, DurationYears: 10},
	}
	require.NoError(t, gdb.Create(&plans).Error)

	return f
}
