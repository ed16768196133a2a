package controllers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
	InternalConfig      *config.InternalConfig
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase, internalConfig *config.InternalConfig) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *NotificationController) FindMyNotifications(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NotificationController.FindMyNotifications requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.NotificationUsecase.FindMyNotifications(ctx)
	if err != nil {
		ctrl.Log.Error("NotificationController.FindMyNotifications NotificationUsecase.FindMyNotifications error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NotificationController.FindMyNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingNotificationCountKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationSuccessMessage, response)
}

func (ctrl *NotificationController) FindMyNotificationByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NotificationController.FindMyNotificationByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if notificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamNotificationID))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.NotificationUsecase.FindMyNotificationByID(ctx, notificationID)
	if err != nil {
		ctrl.Log.Error("NotificationController.FindMyNotificationByID NotificationUsecase.FindMyNotificationByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notificationID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationSuccessMessage, response)
}

func (ctrl *NotificationController) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NotificationController.MarkAsRead requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if notificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamNotificationID))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.NotificationUsecase.MarkAsRead(ctx, notificationID); err != nil {
		ctrl.Log.Error("NotificationController.MarkAsRead NotificationUsecase.MarkAsRead error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notificationID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NotificationController.MarkAsRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkNotificationReadSuccessMessage, nil)
}
