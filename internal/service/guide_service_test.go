package service

import (
	"context"
	"testing"

	"repairhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guideRepoStub is a stub for repository.GuideRepository.
type guideRepoStub struct {
	createFn  func(context.Context, *models.Guide) error
	getByIDFn func(context.Context, uint) (*models.Guide, error)
	listFn    func(context.Context) ([]models.Guide, error)
	updateFn  func(context.Context, *models.Guide) error
	deleteFn  func(context.Context, uint) error
}

func (s *guideRepoStub) Create(ctx context.Context, guide *models.Guide) error {
	return s.createFn(ctx, guide)
}
func (s *guideRepoStub) GetByID(ctx context.Context, id uint) (*models.Guide, error) {
	return s.getByIDFn(ctx, id)
}
func (s *guideRepoStub) List(ctx context.Context) ([]models.Guide, error) {
	return s.listFn(ctx)
}
func (s *guideRepoStub) Update(ctx context.Context, guide *models.Guide) error {
	return s.updateFn(ctx, guide)
}
func (s *guideRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopGuideRepo() *guideRepoStub {
	return &guideRepoStub{
		createFn: func(_ context.Context, _ *models.Guide) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Guide, error) {
			return &models.Guide{ID: id, UserID: 1}, nil
		},
		listFn:   func(_ context.Context) ([]models.Guide, error) { return nil, nil },
		updateFn: func(_ context.Context, _ *models.Guide) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestGuideService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewGuideService(noopGuideRepo(), noopUserRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateGuideInput
	}{
		{name: "missing user_id", input: CreateGuideInput{ItemName: "Kettle", GuideContent: "steps"}},
		{name: "missing item_name", input: CreateGuideInput{UserID: 1, GuideContent: "steps"}},
		{name: "missing guide_content", input: CreateGuideInput{UserID: 1, ItemName: "Kettle"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Create(ctx, tc.input)
			assertValidationError(t, err)
		})
	}
}

func TestGuideService_Create_StampsDate(t *testing.T) {
	t.Parallel()

	guideRepo := noopGuideRepo()
	guideRepo.createFn = func(_ context.Context, g *models.Guide) error {
		g.ID = 4
		return nil
	}
	svc := NewGuideService(guideRepo, noopUserRepo())

	guide, err := svc.Create(context.Background(), CreateGuideInput{
		UserID:       2,
		ItemName:     "Kettle",
		GuideContent: "Descale with vinegar.",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(4), guide.ID)
	assert.Equal(t, models.Today(), guide.Date)
}

func TestGuideService_Update_Ownership(t *testing.T) {
	t.Parallel()

	guideRepo := noopGuideRepo()
	guideRepo.getByIDFn = func(_ context.Context, id uint) (*models.Guide, error) {
		return &models.Guide{ID: id, UserID: 5, ItemName: "Kettle", GuideContent: "old"}, nil
	}

	t.Run("non-owner rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewGuideService(guideRepo, noopUserRepo())
		content := "new"
		_, err := svc.Update(context.Background(), 1, 9, UpdateGuideInput{GuideContent: &content})
		assertUnauthorizedError(t, err)
	})

	t.Run("blank patch values rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewGuideService(guideRepo, noopUserRepo())
		blank := ""
		_, err := svc.Update(context.Background(), 1, 5, UpdateGuideInput{GuideContent: &blank})
		assertValidationError(t, err)
	})

	t.Run("owner patch applies only provided fields", func(t *testing.T) {
		t.Parallel()
		var saved *models.Guide
		repo := noopGuideRepo()
		repo.getByIDFn = guideRepo.getByIDFn
		repo.updateFn = func(_ context.Context, g *models.Guide) error {
			saved = g
			return nil
		}
		svc := NewGuideService(repo, noopUserRepo())
		content := "Descale monthly."
		guide, err := svc.Update(context.Background(), 1, 5, UpdateGuideInput{GuideContent: &content})
		require.NoError(t, err)
		assert.Equal(t, "Descale monthly.", guide.GuideContent)
		require.NotNil(t, saved)
		assert.Equal(t, "Kettle", saved.ItemName, "omitted fields stay untouched")
	})
}

func TestGuideService_Delete_Ownership(t *testing.T) {
	t.Parallel()

	guideRepo := noopGuideRepo()
	guideRepo.getByIDFn = func(_ context.Context, id uint) (*models.Guide, error) {
		return &models.Guide{ID: id, UserID: 5}, nil
	}
	svc := NewGuideService(guideRepo, noopUserRepo())

	err := svc.Delete(context.Background(), 1, 9)
	assertUnauthorizedError(t, err)
}
