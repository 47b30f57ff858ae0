package service

import (
	"context"

	"repairhub/internal/models"
	"repairhub/internal/repository"
)

// GuideService implements the guide operations of the content service.
type GuideService struct {
	guideRepo repository.GuideRepository
	userRepo  repository.UserRepository
}

// CreateGuideInput carries the fields of a new guide.
type CreateGuideInput struct {
	UserID       uint   `json:"user_id"`
	ItemName     string `json:"item_name"`
	GuideContent string `json:"guide_content"`
}

// UpdateGuideInput is a partial patch: only non-nil fields are applied.
type UpdateGuideInput struct {
	ItemName     *string      `json:"item_name"`
	GuideContent *string      `json:"guide_content"`
	Date         *models.Date `json:"date"`
}

// NewGuideService creates a GuideService.
func NewGuideService(guideRepo repository.GuideRepository, userRepo repository.UserRepository) *GuideService {
	return &GuideService{guideRepo: guideRepo, userRepo: userRepo}
}

func (s *GuideService) Create(ctx context.Context, in CreateGuideInput) (*models.Guide, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if in.ItemName == "" || in.GuideContent == "" {
		return nil, models.NewValidationError("item_name and guide_content are required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	guide := &models.Guide{
		UserID:       in.UserID,
		ItemName:     in.ItemName,
		GuideContent: in.GuideContent,
		Date:         models.Today(),
	}
	if err := s.guideRepo.Create(ctx, guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *GuideService) Get(ctx context.Context, id uint) (*models.Guide, error) {
	return s.guideRepo.GetByID(ctx, id)
}

func (s *GuideService) List(ctx context.Context) ([]models.Guide, error) {
	return s.guideRepo.List(ctx)
}

// Update applies a partial patch. Only the owner may update.
func (s *GuideService) Update(ctx context.Context, id, actorID uint, in UpdateGuideInput) (*models.Guide, error) {
	guide, err := s.guideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guide.UserID != actorID {
		return nil, models.NewUnauthorizedError("You can only update your own guides")
	}

	if in.ItemName != nil {
		if *in.ItemName == "" {
			return nil, models.NewValidationError("item_name cannot be blank")
		}
		guide.ItemName = *in.ItemName
	}
	if in.GuideContent != nil {
		if *in.GuideContent == "" {
			return nil, models.NewValidationError("guide_content cannot be blank")
		}
		guide.GuideContent = *in.GuideContent
	}
	if in.Date != nil {
		guide.Date = *in.Date
	}

	if err := s.guideRepo.Update(ctx, guide); err != nil {
		return nil, err
	}
	return guide, nil
}

// Delete removes a guide. Only the owner may delete.
func (s *GuideService) Delete(ctx context.Context, id, actorID uint) error {
	guide, err := s.guideRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if guide.UserID != actorID {
		return models.NewUnauthorizedError("You can only delete your own guides")
	}
	return s.guideRepo.Delete(ctx, id)
}
