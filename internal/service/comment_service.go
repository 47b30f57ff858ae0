package service

import (
	"context"
	"time"

	"repairhub/internal/models"
	"repairhub/internal/repository"
)

const maxCommentLen = 10000

// CommentService is the thread engine: it owns the invariants of a post's
// discussion tree while never materializing the tree itself. Listing returns
// a flat date-ordered slice and leaves assembly to the client, which keeps
// requests stateless and deep threads harmless.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.RepairPostRepository
	userRepo    repository.UserRepository
	awardBadges func(ctx context.Context, userID uint)
	now         func() time.Time
}

// CreateCommentInput carries the fields of a new comment.
type CreateCommentInput struct {
	PostID   uint
	UserID   uint
	Content  string
	ParentID *uint
}

// NewCommentService creates a CommentService. awardBadges and clock may be
// nil (no awarding, time.Now).
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.RepairPostRepository,
	userRepo repository.UserRepository,
	awardBadges func(ctx context.Context, userID uint),
	clock func() time.Time,
) *CommentService {
	if clock == nil {
		clock = time.Now
	}
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		awardBadges: awardBadges,
		now:         clock,
	}
}

// Create validates author, post and (when given) parent, then persists the
// comment. A parent attached to a different post is rejected: cross-post
// parenting would let a reply escape its thread.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.RepairPostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		Content:      in.Content,
		Date:         s.now().UTC(),
		UserID:       in.UserID,
		RepairPostID: in.PostID,
		ParentID:     in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if s.awardBadges != nil {
		s.awardBadges(ctx, comment.UserID)
	}

	return comment, nil
}

// ListByPost returns the post's flat thread ordered by date ascending. The
// post must exist; an empty thread is a valid (empty) result.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// Update changes a comment's content. Only the author may edit; everything
// apart from content is immutable after creation.
func (s *CommentService) Update(ctx context.Context, id, actorID uint, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Children are orphaned, never cascade-deleted:
// the storage layer nulls their parent reference and they remain in the
// thread listing.
func (s *CommentService) Delete(ctx context.Context, id, actorID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, id)
}
