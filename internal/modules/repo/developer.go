package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
)

type DeveloperRepo interface {
	// List returns all developers with their compound count.
	List(ctx context.Context) ([]model.Developer, error)
	// GetByID returns a developer with its compounds, each compound
	// carrying its unit count.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Developer, error)
}

type developerRepo struct{ db *gorm.DB }

func NewDeveloperRepo(db *gorm.DB) DeveloperRepo {
	return &developerRepo{db: db}
}

func (r *developerRepo) List(ctx context.Context) ([]model.Developer, error) {
	var developers []model.Developer
	err := r.db.WithContext(ctx).Model(&model.Developer{}).
		Select(`developers.*, (SELECT COUNT(*) FROM compounds WHERE compounds.developer_id = developers.id) AS compounds_count`).
		Order("developers.name ASC").
		Find(&developers).Error
	return developers, err
}

func (r *developerRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Developer, error) {
	var d model.Developer
	err := r.db.WithContext(ctx).Model(&model.Developer{}).
		Preload("Compounds", func(db *gorm.DB) *gorm.DB {
			return db.Select(compoundUnitsCount).Order("compounds.created_at DESC")
		}).
		Where("developers.id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
