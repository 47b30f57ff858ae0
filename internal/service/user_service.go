package service

import (
	"context"

	"repairhub/internal/models"
	"repairhub/internal/repository"
)

// UserService serves the public-facing user reads.
type UserService struct {
	userRepo  repository.UserRepository
	badgeRepo repository.BadgeRepository
}

// Profile is a user's public profile with earned badges attached.
type Profile struct {
	ID        uint               `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Bio       string             `json:"bio"`
	AvatarURL string             `json:"avatar_url"`
	Badges    []models.UserBadge `json:"badges"`
}

// NewUserService creates a UserService.
func NewUserService(userRepo repository.UserRepository, badgeRepo repository.BadgeRepository) *UserService {
	return &UserService{userRepo: userRepo, badgeRepo: badgeRepo}
}

// List returns the trimmed summary of every user.
func (s *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

// GetProfile returns one user's public profile including earned badges.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	badges, err := s.badgeRepo.ListForUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if badges == nil {
		badges = []models.UserBadge{}
	}

	return &Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		Badges:    badges,
	}, nil
}
