package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) (string, error)
}
