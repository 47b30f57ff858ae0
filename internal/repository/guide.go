package repository

import (
	"context"
	"errors"

	"repairhub/internal/models"

	"gorm.io/gorm"
)

// GuideRepository defines persistence operations for guides.
type GuideRepository interface {
	Create(ctx context.Context, guide *models.Guide) error
	GetByID(ctx context.Context, id uint) (*models.Guide, error)
	List(ctx context.Context) ([]models.Guide, error)
	Update(ctx context.Context, guide *models.Guide) error
	Delete(ctx context.Context, id uint) error
}

type guideRepository struct {
	db *gorm.DB
}

// NewGuideRepository returns a new GuideRepository implementation.
func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) Create(ctx context.Context, guide *models.Guide) error {
	if err := r.db.WithContext(ctx).Create(guide).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *guideRepository) GetByID(ctx context.Context, id uint) (*models.Guide, error) {
	var guide models.Guide
	if err := r.db.WithContext(ctx).First(&guide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Guide", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &guide, nil
}

// List returns all guides newest-first (ordered by id descending).
func (r *guideRepository) List(ctx context.Context) ([]models.Guide, error) {
	var guides []models.Guide
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&guides).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return guides, nil
}

func (r *guideRepository) Update(ctx context.Context, guide *models.Guide) error {
	if err := r.db.WithContext(ctx).Save(guide).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *guideRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Guide{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Guide", id)
	}
	return nil
}
