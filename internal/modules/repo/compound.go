package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
)

type CompoundRepo interface {
	// List returns all compounds with their developer and unit count.
	List(ctx context.Context) ([]model.Compound, error)
	// GetByID returns a compound with its developer and its units,
	// each unit carrying its payment plan.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Compound, error)
	GetBySlug(ctx context.Context, slug string) (*model.Compound, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type compoundRepo struct{ db *gorm.DB }

func NewCompoundRepo(db *gorm.DB) CompoundRepo {
	return &compoundRepo{db: db}
}

const compoundUnitsCount = `compounds.*, (SELECT COUNT(*) FROM units WHERE units.compound_id = compounds.id) AS units_count`

func (r *compoundRepo) List(ctx context.Context) ([]model.Compound, error) {
	var compounds []model.Compound
	err := r.db.WithContext(ctx).Model(&model.Compound{}).
		Select(compoundUnitsCount).
		Joins("Developer").
		Order("compounds.created_at DESC").
		Find(&compounds).Error
	return compounds, err
}

func (r *compoundRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Compound, error) {
	return r.getOne(ctx, "compounds.id = ?", id)
}

func (r *compoundRepo) GetBySlug(ctx context.Context, slug string) (*model.Compound, error) {
	return r.getOne(ctx, "compounds.slug = ?", slug)
}

func (r *compoundRepo) getOne(ctx context.Context, cond string, arg any) (*model.Compound, error) {
	var c model.Compound
	err := r.db.WithContext(ctx).Model(&model.Compound{}).
		Joins("Developer").
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.created_at DESC")
		}).
		Preload("Units.PaymentPlan").
		Where(cond, arg).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compoundRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Compound{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
