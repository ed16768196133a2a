package controllers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FeedbackController struct {
	Log             *zap.Logger
	FeedbackUsecase contracts.FeedbackUsecase
	InternalConfig  *config.InternalConfig
}

func NewFeedbackController(logger *zap.Logger, feedbackUsecase contracts.FeedbackUsecase, internalConfig *config.InternalConfig) *FeedbackController {
	return &FeedbackController{
		Log:             logger,
		FeedbackUsecase: feedbackUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *FeedbackController) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("FeedbackController.CreateFeedback requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateFeedback)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("FeedbackController.CreateFeedback failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.FeedbackUsecase.CreateFeedback(ctx, request)
	if err != nil {
		ctrl.Log.Error("FeedbackController.CreateFeedback FeedbackUsecase.CreateFeedback error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateFeedbackSuccessMessage, response)
}
