package feedback

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeedbackRepository struct {
	stored []models.Feedback
	err    error
}

func (s *stubFeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	feedback.CreatedAt = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	s.stored = append(s.stored, *feedback)
	return "66b1f0c2a4d3e5f6a7b8c9d0", nil
}

func TestFeedbackUsecase_CreateFeedback(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "nimal@example.com"}
	ctx := identity.WithUser(context.Background(), user)

	t.Run("stored as new", func(t *testing.T) {
		repo := &stubFeedbackRepository{}
		uc := &feedbackUsecase{FeedbackRepository: repo, Log: zap.NewNop()}

		feedback, err := uc.CreateFeedback(ctx, &requests.CreateFeedback{Message: "  Great consultation  "})

		require.NoError(t, err)
		assert.Equal(t, "66b1f0c2a4d3e5f6a7b8c9d0", feedback.ID)
		assert.Equal(t, constvars.FeedbackStatusNew, feedback.Status)
		require.Len(t, repo.stored, 1)
		assert.Equal(t, "Great consultation", repo.stored[0].Message)
		assert.Equal(t, user.Email, repo.stored[0].UserEmail)
	})

	t.Run("whitespace only", func(t *testing.T) {
		repo := &stubFeedbackRepository{}
		uc := &feedbackUsecase{FeedbackRepository: repo, Log: zap.NewNop()}

		feedback, err := uc.CreateFeedback(ctx, &requests.CreateFeedback{Message: " \n\t "})

		assert.Nil(t, feedback)
		assert.True(t, exceptions.IsKind(err, exceptions.KindEmptyFeedback))
		assert.Empty(t, repo.stored)
	})

	t.Run("too long", func(t *testing.T) {
		uc := &feedbackUsecase{FeedbackRepository: &stubFeedbackRepository{}, Log: zap.NewNop()}

		feedback, err := uc.CreateFeedback(ctx, &requests.CreateFeedback{Message: strings.Repeat("a", 2001)})

		assert.Nil(t, feedback)
		assert.Error(t, err)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		uc := &feedbackUsecase{FeedbackRepository: &stubFeedbackRepository{}, Log: zap.NewNop()}

		feedback, err := uc.CreateFeedback(context.Background(), &requests.CreateFeedback{Message: "hi"})

		assert.Nil(t, feedback)
		assert.True(t, exceptions.IsKind(err, exceptions.KindUnauthenticated))
	})

	t.Run("store failure", func(t *testing.T) {
		uc := &feedbackUsecase{FeedbackRepository: &stubFeedbackRepository{err: errors.New("timeout")}, Log: zap.NewNop()}

		feedback, err := uc.CreateFeedback(ctx, &requests.CreateFeedback{Message: "hi"})

		assert.Nil(t, feedback)
		assert.Error(t, err)
	})
}
