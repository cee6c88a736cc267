package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
	"github.com/OMAR684257931/nawy-apartments/internal/pkg/filter"
)

type UnitRepo interface {
	// List returns one page of matching units plus the total count of the
	// filtered set before pagination.
	List(ctx context.Context, spec *filter.Spec) ([]model.Unit, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Unit, error)
	ExistsByReference(ctx context.Context, referenceNumber string) (bool, error)
	Create(ctx context.Context, u *model.Unit) error
}

type unitRepo struct{ db *gorm.DB }

func NewUnitRepo(db *gorm.DB) UnitRepo {
	return &unitRepo{db: db}
}

// joined attaches the compound, its developer and the payment plan in the
// same round trip. All three are to-one relations, so the joins never
// multiply rows and no per-row follow-up queries happen.
func (r *unitRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Unit{}).
		Joins("Compound").
		Joins("Compound.Developer").
		Joins("PaymentPlan")
}

// applySpec turns the compiled filter specification into a single predicate
// conjunction. The search filter expands to an OR-group AND'd with the rest.
func (r *unitRepo) applySpec(q *gorm.DB, spec *filter.Spec) *gorm.DB {
	if spec.MinPrice != nil {
		q = q.Where("units.price >= ?", *spec.MinPrice)
	}
	if spec.MaxPrice != nil {
		q = q.Where("units.price <= ?", *spec.MaxPrice)
	}
	if spec.UnitAreaMin != nil {
		q = q.Where("units.unit_area >= ?", *spec.UnitAreaMin)
	}
	if spec.UnitAreaMax != nil {
		q = q.Where("units.unit_area <= ?", *spec.UnitAreaMax)
	}
	if spec.Bedrooms != nil {
		q = q.Where("units.bedrooms = ?", *spec.Bedrooms)
	}
	if len(spec.PropertyTypes) > 0 {
		q = q.Where("units.property_type IN ?", spec.PropertyTypes)
	}
	if spec.CompoundID != nil {
		q = q.Where("units.compound_id = ?", *spec.CompoundID)
	}
	if spec.DeveloperID != nil {
		q = q.Where(`"Compound".developer_id = ?`, *spec.DeveloperID)
	}
	if spec.Area != "" {
		q = q.Where(`LOWER("Compound".location) LIKE ?`, contains(spec.Area))
	}
	if len(spec.Amenities) > 0 {
		// Amenities are stored as a JSON array; matching the quoted tag
		// gives whole-tag "contains any of" semantics on both postgres
		// and sqlite.
		grp := r.db.Where("units.amenities LIKE ?", `%"`+spec.Amenities[0]+`"%`)
		for _, a := range spec.Amenities[1:] {
			grp = grp.Or("units.amenities LIKE ?", `%"`+a+`"%`)
		}
		q = q.Where(grp)
	}
	if spec.Search != "" {
		s := contains(spec.Search)
		q = q.Where(r.db.
			Where("LOWER(units.title) LIKE ?", s).
			Or("LOWER(units.reference_number) LIKE ?", s).
			Or("LOWER(units.unit_number) LIKE ?", s).
			Or(`LOWER("Compound".name) LIKE ?`, s).
			Or(`LOWER("Compound__Developer".name) LIKE ?`, s))
	}
	return q
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func (r *unitRepo) List(ctx context.Context, spec *filter.Spec) ([]model.Unit, int64, error) {
	var (
		units []model.Unit
		total int64
	)

	// Page fetch and count are independent reads over the same predicate;
	// run them concurrently on separate sessions.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := r.applySpec(r.joined(gctx), spec)
		return q.
			Order("units.created_at DESC, units.id ASC").
			Limit(spec.Limit).
			Offset((spec.Page - 1) * spec.Limit).
			Find(&units).Error
	})
	g.Go(func() error {
		q := r.applySpec(r.joined(gctx), spec)
		return q.Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Unit, error) {
	var u model.Unit
	err := r.joined(ctx).Where("units.id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *unitRepo) ExistsByReference(ctx context.Context, referenceNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Unit{}).
		Where("reference_number = ?", referenceNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *unitRepo) Create(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}
