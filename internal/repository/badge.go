package repository

import (
	"context"
	"errors"

	"repairhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BadgeRepository defines persistence operations for badges and awards.
type BadgeRepository interface {
	List(ctx context.Context) ([]models.Badge, error)
	GetByID(ctx context.Context, id uint) (*models.Badge, error)
	GetByName(ctx context.Context, name string) (*models.Badge, error)
	Create(ctx context.Context, badge *models.Badge) error
	Award(ctx context.Context, userBadge *models.UserBadge) error
	ListForUser(ctx context.Context, userID uint) ([]models.UserBadge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository returns a new BadgeRepository implementation.
func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) List(ctx context.Context) ([]models.Badge, error) {
	var badges []models.Badge
	if err := r.db.WithContext(ctx).Order("id").Find(&badges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return badges, nil
}

func (r *badgeRepository) GetByID(ctx context.Context, id uint) (*models.Badge, error) {
	var badge models.Badge
	if err := r.db.WithContext(ctx).First(&badge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Badge", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &badge, nil
}

// GetByName returns (nil, nil) when no badge has the given name.
func (r *badgeRepository) GetByName(ctx context.Context, name string) (*models.Badge, error) {
	var badge models.Badge
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&badge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &badge, nil
}

func (r *badgeRepository) Create(ctx context.Context, badge *models.Badge) error {
	if err := r.db.WithContext(ctx).Create(badge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Badge name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Award persists a (user, badge) pair. The composite unique index turns a
// repeat award into Conflict regardless of concurrent callers. The Badge
// association is read-only here; only the pair row is written.
func (r *badgeRepository) Award(ctx context.Context, userBadge *models.UserBadge) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(userBadge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Badge already awarded")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *badgeRepository) ListForUser(ctx context.Context, userID uint) ([]models.UserBadge, error) {
	var awards []models.UserBadge
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at").
		Find(&awards).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return awards, nil
}
