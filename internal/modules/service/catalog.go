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
)

const (
	compoundsListKey  = "compounds:all"
	developersListKey = "developers:all"
)

// CatalogService serves the reference data around units: compounds and
// developers, with their counts and nested listings.
type CatalogService interface {
	ListCompounds(ctx context.Context) ([]model.Compound, error)
	GetCompound(ctx context.Context, id uuid.UUID) (*model.Compound, error)
	GetCompoundBySlug(ctx context.Context, slug string) (*model.Compound, error)
	ListDevelopers(ctx context.Context) ([]model.Developer, error)
	GetDeveloper(ctx context.Context, id uuid.UUID) (*model.Developer, error)
}

type catalogService struct {
	compounds  repo.CompoundRepo
	developers repo.DeveloperRepo
	store      cache.Store
	log        *zap.Logger
}

func NewCatalogService(compounds repo.CompoundRepo, developers repo.DeveloperRepo, store cache.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		compounds:  compounds,
		developers: developers,
		store:      store,
		log:        log,
	}
}

func (s *catalogService) ListCompounds(ctx context.Context) ([]model.Compound, error) {
	var cached []model.Compound
	if cacheGet(ctx, s.store, s.log, compoundsListKey, &cached) {
		return cached, nil
	}

	compounds, err := s.compounds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list compounds: %w", err)
	}

	cacheSet(ctx, s.store, s.log, compoundsListKey, compounds, entityTTL)
	return compounds, nil
}

func (s *catalogService) GetCompound(ctx context.Context, id uuid.UUID) (*model.Compound, error) {
	key := "compound:" + id.String()

	var cached model.Compound
	if cacheGet(ctx, s.store, s.log, key, &cached) {
		return &cached, nil
	}

	compound, err := s.compounds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompoundNotFound
		}
		return nil, fmt.Errorf("get compound: %w", err)
	}

	cacheSet(ctx, s.store, s.log, key, compound, entityTTL)
	return compound, nil
}

func (s *catalogService) GetCompoundBySlug(ctx context.Context, slug string) (*model.Compound, error) {
	key := "compound:slug:" + slug

	var cached model.Compound
	if cacheGet(ctx, s.store, s.log, key, &cached) {
		return &cached, nil
	}

	compound, err := s.compounds.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompoundNotFound
		}
		return nil, fmt.Errorf("get compound by slug: %w", err)
	}

	cacheSet(ctx, s.store, s.log, key, compound, entityTTL)
	return compound, nil
}

func (s *catalogService) ListDevelopers(ctx context.Context) ([]model.Developer, error) {
	var cached []model.Developer
	if cacheGet(ctx, s.store, s.log, developersListKey, &cached) {
		return cached, nil
	}

	developers, err := s.developers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}

	cacheSet(ctx, s.store, s.log, developersListKey, developers, entityTTL)
	return developers, nil
}

func (s *catalogService) GetDeveloper(ctx context.Context, id uuid.UUID) (*model.Developer, error) {
	key := "developer:" + id.String()

	var cached model.Developer
	if cacheGet(ctx, s.store, s.log, key, &cached) {
		return &cached, nil
	}

	developer, err := s.developers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("get developer: %w", err)
	}

	cacheSet(ctx, s.store, s.log, key, developer, entityTTL)
	return developer, nil
}
