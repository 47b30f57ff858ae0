package service

import (
	"context"

	"repairhub/internal/models"
	"repairhub/internal/repository"
)

// PostService implements the repair-post operations of the content service.
type PostService struct {
	postRepo    repository.RepairPostRepository
	userRepo    repository.UserRepository
	awardBadges func(ctx context.Context, userID uint)
}

// CreatePostInput carries the fields of a new repair post. UserID comes from
// the request body; the bearer token only gates the mutation.
type CreatePostInput struct {
	UserID           uint     `json:"user_id"`
	ItemName         string   `json:"item_name"`
	IssueDescription string   `json:"issue_description"`
	RepairSteps      string   `json:"repair_steps"`
	Success          bool     `json:"success"`
	Images           []string `json:"images"`
}

// UpdatePostInput is a partial patch: only non-nil fields are applied.
type UpdatePostInput struct {
	ItemName         *string      `json:"item_name"`
	IssueDescription *string      `json:"issue_description"`
	RepairSteps      *string      `json:"repair_steps"`
	Success          *bool        `json:"success"`
	Images           *[]string    `json:"images"`
	Date             *models.Date `json:"date"`
}

// NewPostService creates a PostService. awardBadges may be nil; when set it is
// invoked best-effort after each successful create.
func NewPostService(
	postRepo repository.RepairPostRepository,
	userRepo repository.UserRepository,
	awardBadges func(ctx context.Context, userID uint),
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		awardBadges: awardBadges,
	}
}

// Create validates the author exists, stamps today's date, and persists the
// post.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.RepairPost, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if in.ItemName == "" {
		return nil, models.NewValidationError("item_name is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	post := &models.RepairPost{
		UserID:           in.UserID,
		ItemName:         in.ItemName,
		IssueDescription: in.IssueDescription,
		RepairSteps:      in.RepairSteps,
		Success:          in.Success,
		Date:             models.Today(),
		Images:           images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if s.awardBadges != nil {
		s.awardBadges(ctx, post.UserID)
	}

	return post, nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*models.RepairPost, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]models.RepairPost, error) {
	return s.postRepo.List(ctx)
}

// Update applies a partial patch. Only the owner may update; the date stays
// untouched unless the patch explicitly carries one.
func (s *PostService) Update(ctx context.Context, id, actorID uint, in UpdatePostInput) (*models.RepairPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.ItemName != nil {
		if *in.ItemName == "" {
			return nil, models.NewValidationError("item_name cannot be blank")
		}
		post.ItemName = *in.ItemName
	}
	if in.IssueDescription != nil {
		post.IssueDescription = *in.IssueDescription
	}
	if in.RepairSteps != nil {
		post.RepairSteps = *in.RepairSteps
	}
	if in.Success != nil {
		post.Success = *in.Success
	}
	if in.Images != nil {
		post.Images = *in.Images
	}
	if in.Date != nil {
		post.Date = *in.Date
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Comments are left in place; the thread engine
// surfaces them only through their post, so they become unreachable without
// being destroyed.
func (s *PostService) Delete(ctx context.Context, id, actorID uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, id)
}
