package feedback

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type feedbackUsecase struct {
	FeedbackRepository contracts.FeedbackRepository
	Log                *zap.Logger
}

var (
	feedbackUsecaseInstance contracts.FeedbackUsecase
	onceFeedbackUsecase     sync.Once
)

func NewFeedbackUsecase(feedbackRepository contracts.FeedbackRepository, logger *zap.Logger) contracts.FeedbackUsecase {
	onceFeedbackUsecase.Do(func() {
		feedbackUsecaseInstance = &feedbackUsecase{
			FeedbackRepository: feedbackRepository,
			Log:                logger,
		}
	})
	return feedbackUsecaseInstance
}

func (uc *feedbackUsecase) CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.CreateFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	utils.SanitizeCreateFeedbackRequest(request)
	if request.Message == "" {
		return nil, exceptions.ErrEmptyFeedback()
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	feedback := &models.Feedback{
		UserID:    user.ID,
		UserEmail: user.Email,
		Message:   request.Message,
		Status:    constvars.FeedbackStatusNew,
	}
	feedbackID, err := uc.FeedbackRepository.CreateFeedback(ctx, feedback)
	if err != nil {
		uc.Log.Error("feedbackUsecase.CreateFeedback error calling FeedbackRepository.CreateFeedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("feedbackUsecase.CreateFeedback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFeedbackIDKey, feedbackID),
	)
	return &responses.Feedback{
		ID:        feedbackID,
		Status:    feedback.Status,
		CreatedAt: feedback.CreatedAt,
	}, nil
}
