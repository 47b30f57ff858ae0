package service

import (
	"context"
	"errors"
	"time"

	"repairhub/internal/models"
	"repairhub/internal/repository"
)

// Built-in badge names. Award thresholds live in EvaluateForUser.
const (
	BadgeFirstRepair = "First Repair"
	BadgeContributor = "Contributor"
	BadgeHelpful     = "Helpful"
)

// BadgeService owns the badge catalog and award rules.
type BadgeService struct {
	badgeRepo   repository.BadgeRepository
	postRepo    repository.RepairPostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewBadgeService creates a BadgeService. A nil clock defaults to time.Now.
func NewBadgeService(
	badgeRepo repository.BadgeRepository,
	postRepo repository.RepairPostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	clock func() time.Time,
) *BadgeService {
	if clock == nil {
		clock = time.Now
	}
	return &BadgeService{
		badgeRepo:   badgeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		now:         clock,
	}
}

// List returns the badge catalog.
func (s *BadgeService) List(ctx context.Context) ([]models.Badge, error) {
	return s.badgeRepo.List(ctx)
}

// ListForUser returns the badges a user has earned.
func (s *BadgeService) ListForUser(ctx context.Context, userID uint) ([]models.UserBadge, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.badgeRepo.ListForUser(ctx, userID)
}

// Award grants a badge to a user. Awarding the same badge twice yields
// Conflict.
func (s *BadgeService) Award(ctx context.Context, userID, badgeID uint) (*models.UserBadge, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	badge, err := s.badgeRepo.GetByID(ctx, badgeID)
	if err != nil {
		return nil, err
	}

	userBadge := &models.UserBadge{
		UserID:   userID,
		BadgeID:  badge.ID,
		EarnedAt: s.now().UTC(),
		Badge:    *badge,
	}
	if err := s.badgeRepo.Award(ctx, userBadge); err != nil {
		return nil, err
	}
	return userBadge, nil
}

// EvaluateForUser re-checks the user's activity counters against the built-in
// award thresholds and grants anything newly earned. Already-held badges are
// skipped silently.
func (s *BadgeService) EvaluateForUser(ctx context.Context, userID uint) error {
	posts, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	comments, err := s.commentRepo.CountByUser(ctx, userID)
	if err != nil {
		return err
	}

	if posts >= 1 {
		if err := s.ensureAwarded(ctx, userID, BadgeFirstRepair); err != nil {
			return err
		}
	}
	if posts >= 5 {
		if err := s.ensureAwarded(ctx, userID, BadgeContributor); err != nil {
			return err
		}
	}
	if comments >= 10 {
		if err := s.ensureAwarded(ctx, userID, BadgeHelpful); err != nil {
			return err
		}
	}
	return nil
}

func (s *BadgeService) ensureAwarded(ctx context.Context, userID uint, name string) error {
	badge, err := s.badgeRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if badge == nil {
		// Catalog not seeded; nothing to grant.
		return nil
	}

	err = s.badgeRepo.Award(ctx, &models.UserBadge{
		UserID:   userID,
		BadgeID:  badge.ID,
		EarnedAt: s.now().UTC(),
	})
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
		return nil
	}
	return err
}

// SeedDefaults creates the built-in badges when they are missing. Safe to run
// on every startup.
func (s *BadgeService) SeedDefaults(ctx context.Context) error {
	defaults := []models.Badge{
		{Name: BadgeFirstRepair, Description: "Posted your first repair", Variant: models.BadgeVariantDefault},
		{Name: BadgeContributor, Description: "5+ repairs", Variant: models.BadgeVariantSecondary},
		{Name: BadgeHelpful, Description: "10+ comments", Variant: models.BadgeVariantOutline},
	}

	for i := range defaults {
		existing, err := s.badgeRepo.GetByName(ctx, defaults[i].Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.badgeRepo.Create(ctx, &defaults[i]); err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
				continue
			}
			return err
		}
	}
	return nil
}
