package routers

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) GetAvailableDates(ctx context.Context) (*responses.AvailableDates, error) {
	args := m.Called(ctx)
	return args.Get(0).(*responses.AvailableDates), args.Error(1)
}

// CreateAppointment mirrors the usecase's authentication gate so the router
// test can observe what the middleware chain attached to the context.
func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment, idempotencyKey string) (*responses.BookingConfirmation, error) {
	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}
	args := m.Called(user.ID, request.DoctorID, idempotencyKey)
	return args.Get(0).(*responses.BookingConfirmation), args.Error(1)
}

func (m *MockAppointmentUsecase) FindMyAppointments(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindMyAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) FindMyNotifications(ctx context.Context) ([]responses.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.Notification), args.Error(1)
}

func (m *MockNotificationUsecase) FindMyNotificationByID(ctx context.Context, notificationID string) (*responses.Notification, error) {
	args := m.Called(ctx, notificationID)
	return args.Get(0).(*responses.Notification), args.Error(1)
}

func (m *MockNotificationUsecase) MarkAsRead(ctx context.Context, notificationID string) error {
	return m.Called(ctx, notificationID).Error(0)
}

type tokenProvider struct{}

func (tokenProvider) Verify(ctx context.Context, bearerToken string) (*models.User, error) {
	if bearerToken != constvars.BearerTokenPrefix+"good" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return &models.User{ID: "uid-1", Email: "amara@example.com"}, nil
}

var _ contracts.IdentityProvider = tokenProvider{}

func newTestRouter(t *testing.T, appointments *MockAppointmentUsecase, notifications *MockNotificationUsecase) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/v1",
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 1,
			RequestTimeout:             time.Second,
		},
	}

	mw := middlewares.NewMiddlewares(logger, tokenProvider{}, internalConfig)
	submitLimiter := middlewares.NewRateLimiter(600, 100, time.Minute, logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, mw, submitLimiter, Controllers{
		Appointment:  controllers.NewAppointmentController(logger, appointments, internalConfig),
		Notification: controllers.NewNotificationController(logger, notifications, internalConfig),
		Doctor:       controllers.NewDoctorController(logger, nil, internalConfig),
		Feedback:     controllers.NewFeedbackController(logger, nil, internalConfig),
		Health:       controllers.NewHealthController(logger),
	})
	return router
}

func TestRouter_CreateAppointment(t *testing.T) {
	t.Run("Authenticated Booking", func(t *testing.T) {
		appointments := new(MockAppointmentUsecase)
		appointments.On("CreateAppointment", "uid-1", "doc-1", "key-1").
			Return(&responses.BookingConfirmation{BookingID: "appt-1"}, nil)
		router := newTestRouter(t, appointments, new(MockNotificationUsecase))

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(`{"doctorId":"doc-1","date":"2024-06-15","time":"04:00 PM"}`))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
		req.Header.Set(constvars.HeaderIdempotencyKey, "key-1")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
		assert.Equal(t, "/v1/appointments/appt-1", rec.Header().Get(constvars.HeaderLocation))
		appointments.AssertExpectations(t)
	})

	t.Run("Anonymous Booking Is Rejected", func(t *testing.T) {
		appointments := new(MockAppointmentUsecase)
		router := newTestRouter(t, appointments, new(MockNotificationUsecase))

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(`{"doctorId":"doc-1"}`))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer expired")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderWWWAuthenticate))
		appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRouter_NotificationRoutes(t *testing.T) {
	notifications := new(MockNotificationUsecase)
	notifications.On("MarkAsRead", mock.Anything, "n-1").Return(nil)
	router := newTestRouter(t, new(MockAppointmentUsecase), notifications)

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	notifications.AssertExpectations(t)
}

func TestRouter_HealthAndUnknownRoutes(t *testing.T) {
	router := newTestRouter(t, new(MockAppointmentUsecase), new(MockNotificationUsecase))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
