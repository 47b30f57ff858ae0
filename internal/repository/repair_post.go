package repository

import (
	"context"
	"errors"

	"repairhub/internal/models"

	"gorm.io/gorm"
)

// RepairPostRepository defines persistence operations for repair posts.
type RepairPostRepository interface {
	Create(ctx context.Context, post *models.RepairPost) error
	GetByID(ctx context.Context, id uint) (*models.RepairPost, error)
	List(ctx context.Context) ([]models.RepairPost, error)
	Update(ctx context.Context, post *models.RepairPost) error
	Delete(ctx context.Context, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type repairPostRepository struct {
	db *gorm.DB
}

// NewRepairPostRepository returns a new RepairPostRepository implementation.
func NewRepairPostRepository(db *gorm.DB) RepairPostRepository {
	return &repairPostRepository{db: db}
}

func (r *repairPostRepository) Create(ctx context.Context, post *models.RepairPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *repairPostRepository) GetByID(ctx context.Context, id uint) (*models.RepairPost, error) {
	var post models.RepairPost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Repair post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns all posts newest-first (ordered by id descending).
func (r *repairPostRepository) List(ctx context.Context) ([]models.RepairPost, error) {
	var posts []models.RepairPost
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *repairPostRepository) Update(ctx context.Context, post *models.RepairPost) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *repairPostRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.RepairPost{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Repair post", id)
	}
	return nil
}

func (r *repairPostRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RepairPost{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
