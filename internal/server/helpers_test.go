package server

import (
	"context"
	"testing"

	"repairhub/internal/config"
	"repairhub/internal/models"
	"repairhub/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockRepairPostRepository is a mock of the RepairPostRepository interface
type MockRepairPostRepository struct {
	mock.Mock
}

func (m *MockRepairPostRepository) Create(ctx context.Context, post *models.RepairPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockRepairPostRepository) GetByID(ctx context.Context, id uint) (*models.RepairPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairPost), args.Error(1)
}

func (m *MockRepairPostRepository) List(ctx context.Context) ([]models.RepairPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RepairPost), args.Error(1)
}

func (m *MockRepairPostRepository) Update(ctx context.Context, post *models.RepairPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockRepairPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepairPostRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockGuideRepository is a mock of the GuideRepository interface
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) Create(ctx context.Context, guide *models.Guide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockGuideRepository) GetByID(ctx context.Context, id uint) (*models.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guide), args.Error(1)
}

func (m *MockGuideRepository) List(ctx context.Context) ([]models.Guide, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Guide), args.Error(1)
}

func (m *MockGuideRepository) Update(ctx context.Context, guide *models.Guide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockGuideRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBadgeRepository is a mock of the BadgeRepository interface
type MockBadgeRepository struct {
	mock.Mock
}

func (m *MockBadgeRepository) List(ctx context.Context) ([]models.Badge, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockBadgeRepository) GetByID(ctx context.Context, id uint) (*models.Badge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Badge), args.Error(1)
}

func (m *MockBadgeRepository) GetByName(ctx context.Context, name string) (*models.Badge, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Badge), args.Error(1)
}

func (m *MockBadgeRepository) Create(ctx context.Context, badge *models.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *MockBadgeRepository) Award(ctx context.Context, userBadge *models.UserBadge) error {
	args := m.Called(ctx, userBadge)
	return args.Error(0)
}

func (m *MockBadgeRepository) ListForUser(ctx context.Context, userID uint) ([]models.UserBadge, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.UserBadge), args.Error(1)
}

// testMocks bundles the repository mocks behind a test server.
type testMocks struct {
	users    *MockUserRepository
	posts    *MockRepairPostRepository
	guides   *MockGuideRepository
	comments *MockCommentRepository
	badges   *MockBadgeRepository
}

// newTestServer builds a Server over repository mocks, with badge awarding
// disabled so content tests do not have to stub the badge catalog.
func newTestServer(t *testing.T) (*Server, *testMocks) {
	t.Helper()

	mocks := &testMocks{
		users:    new(MockUserRepository),
		posts:    new(MockRepairPostRepository),
		guides:   new(MockGuideRepository),
		comments: new(MockCommentRepository),
		badges:   new(MockBadgeRepository),
	}

	s := &Server{
		config:      &config.Config{Env: "test"},
		userRepo:    mocks.users,
		postRepo:    mocks.posts,
		guideRepo:   mocks.guides,
		commentRepo: mocks.comments,
		badgeRepo:   mocks.badges,
	}
	s.authService = service.NewAuthService(mocks.users, nil)
	s.postService = service.NewPostService(mocks.posts, mocks.users, nil)
	s.guideService = service.NewGuideService(mocks.guides, mocks.users)
	s.commentService = service.NewCommentService(mocks.comments, mocks.posts, mocks.users, nil, nil)
	s.badgeService = service.NewBadgeService(mocks.badges, mocks.posts, mocks.comments, mocks.users, nil)
	s.userService = service.NewUserService(mocks.users, mocks.badges)

	return s, mocks
}
