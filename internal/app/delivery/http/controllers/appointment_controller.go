package controllers

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"errors"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.GetAvailableDates requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.GetAvailableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAvailableDates(ctx)
	if err != nil {
		ctrl.Log.Error("AppointmentController.GetAvailableDates AppointmentUsecase.GetAvailableDates error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.GetAvailableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAvailableDateCountKey, len(response.Dates)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailableDatesSuccessMessage, response)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	idempotencyKey := r.Header.Get(constvars.HeaderIdempotencyKey)
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdempotencyKey, idempotencyKey))

	request := new(requests.CreateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request, idempotencyKey)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment AppointmentUsecase.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.BookingID),
		zap.String(constvars.LoggingNotificationStatusKey, response.NotificationStatus))
	w.Header().Set(constvars.HeaderLocation, appointmentLocation(ctrl.InternalConfig, response.BookingID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindMyAppointments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindMyAppointments requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindMyAppointments(ctx)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindMyAppointments AppointmentUsecase.FindMyAppointments error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindMyAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindMyAppointmentByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindMyAppointmentByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindMyAppointmentByID(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindMyAppointmentByID AppointmentUsecase.FindMyAppointmentByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err))
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

// withRequestTimeout derives the usecase context from the request so that
// request values such as the authenticated user reach the usecase.
func withRequestTimeout(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := constvars.DefaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeout > 0 {
		timeout = internalConfig.App.RequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

func respondError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
		w.Header().Set(constvars.HeaderWWWAuthenticate, constvars.WWWAuthenticateBearer)
	}
	utils.BuildErrorResponse(log, w, err)
}

func appointmentLocation(internalConfig *config.InternalConfig, bookingID string) string {
	prefix := ""
	if internalConfig != nil {
		prefix = internalConfig.App.EndpointPrefix
	}
	return path.Join("/", prefix, constvars.ResourceAppointments, bookingID)
}
