package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/infra/cache"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/repo"
	"github.com/OMAR684257931/nawy-apartments/internal/pkg/filter"
)

type UnitService interface {
	List(ctx context.Context, spec *filter.Spec) (*UnitListOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Unit, error)
	Create(ctx context.Context, in CreateUnitInput) (*model.Unit, error)
}

type unitService struct {
	units     repo.UnitRepo
	compounds repo.CompoundRepo
	store     cache.Store
	log       *zap.Logger
}

func NewUnitService(units repo.UnitRepo, compounds repo.CompoundRepo, store cache.Store, log *zap.Logger) UnitService {
	return &unitService{
		units:     units,
		compounds: compounds,
		store:     store,
		log:       log,
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type UnitListOutput struct {
	Items      []model.Unit `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

func (s *unitService) List(ctx context.Context, spec *filter.Spec) (*UnitListOutput, error) {
	key := spec.CacheKey()

	var cached UnitListOutput
	if cacheGet(ctx, s.store, s.log, key, &cached) {
		return &cached, nil
	}

	units, total, err := s.units.List(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	totalPages := int((total + int64(spec.Limit) - 1) / int64(spec.Limit))
	out := &UnitListOutput{
		Items: units,
		Pagination: Pagination{
			Page:       spec.Page,
			Limit:      spec.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
	if out.Items == nil {
		out.Items = []model.Unit{}
	}

	cacheSet(ctx, s.store, s.log, key, out, listTTL)
	return out, nil
}

func unitCacheKey(id uuid.UUID) string { return "unit:" + id.String() }

func (s *unitService) Get(ctx context.Context, id uuid.UUID) (*model.Unit, error) {
	key := unitCacheKey(id)

	var cached model.Unit
	if cacheGet(ctx, s.store, s.log, key, &cached) {
		return &cached, nil
	}

	unit, err := s.units.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}

	cacheSet(ctx, s.store, s.log, key, unit, entityTTL)
	return unit, nil
}

type CreateUnitInput struct {
	Title           string
	ReferenceNumber string
	UnitNumber      string
	Price           float64
	Bedrooms        int
	UnitArea        float64
	PropertyType    model.PropertyType
	SaleType        model.SaleType
	Amenities       []string
	GalleryImages   []string
	DeliveryYear    int
	CompoundID      uuid.UUID
}

// Create inserts a unit after the reference-number uniqueness and compound
// existence pre-checks. The pre-checks and the insert are not atomic; if a
// concurrent create wins the race, the unique index on reference_number
// rejects the insert.
func (s *unitService) Create(ctx context.Context, in CreateUnitInput) (*model.Unit, error) {
	exists, err := s.units.ExistsByReference(ctx, in.ReferenceNumber)
	if err != nil {
		return nil, fmt.Errorf("check reference number: %w", err)
	}
	if exists {
		return nil, ErrDuplicateReference
	}

	ok, err := s.compounds.Exists(ctx, in.CompoundID)
	if err != nil {
		return nil, fmt.Errorf("check compound: %w", err)
	}
	if !ok {
		return nil, ErrCompoundNotFound
	}

	unit := &model.Unit{
		Title:           in.Title,
		ReferenceNumber: in.ReferenceNumber,
		UnitNumber:      in.UnitNumber,
		Price:           in.Price,
		Bedrooms:        in.Bedrooms,
		UnitArea:        in.UnitArea,
		PropertyType:    in.PropertyType,
		SaleType:        in.SaleType,
		Amenities:       in.Amenities,
		GalleryImages:   in.GalleryImages,
		DeliveryYear:    in.DeliveryYear,
		CompoundID:      in.CompoundID,
	}
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("create unit: %w", err)
	}

	// Joined read-back; the payment plan is null for a fresh unit.
	created, err := s.units.GetByID(ctx, unit.ID)
	if err != nil {
		return nil, fmt.Errorf("read back unit: %w", err)
	}

	s.invalidateAfterCreate(ctx, unit.ID)
	return created, nil
}

// invalidateAfterCreate drops every cached list query (coarse: any filter
// could match the new unit), the single-unit entry for the new id, and the
// compounds list whose unit counts just changed. Invalidation faults are
// logged and swallowed; the TTL bounds any staleness they leave behind.
func (s *unitService) invalidateAfterCreate(ctx context.Context, id uuid.UUID) {
	if err := s.store.DeleteByPrefix(ctx, "units:"); err != nil {
		s.log.Warn("cache invalidation failed", zap.String("prefix", "units:"), zap.Error(err))
	}
	if err := s.store.Delete(ctx, unitCacheKey(id)); err != nil {
		s.log.Warn("cache invalidation failed", zap.String("key", unitCacheKey(id)), zap.Error(err))
	}
	if err := s.store.Delete(ctx, compoundsListKey); err != nil {
		s.log.Warn("cache invalidation failed", zap.String("key", compoundsListKey), zap.Error(err))
	}
}
