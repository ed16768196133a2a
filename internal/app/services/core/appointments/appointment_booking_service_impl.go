package appointments

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentBookingService struct {
	AppointmentRepository  contracts.AppointmentRepository
	NotificationRepository contracts.NotificationRepository
	SettingsUsecase        contracts.SettingsUsecase
	RedisRepository        contracts.RedisRepository
	// EventPublisher is optional; bookings are not published when nil.
	EventPublisher contracts.BookingEventPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	appointmentBookingServiceInstance contracts.AppointmentBookingService
	onceAppointmentBookingService     sync.Once
)

func NewAppointmentBookingService(
	appointmentRepository contracts.AppointmentRepository,
	notificationRepository contracts.NotificationRepository,
	settingsUsecase contracts.SettingsUsecase,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.BookingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentBookingService {
	onceAppointmentBookingService.Do(func() {
		appointmentBookingServiceInstance = &appointmentBookingService{
			AppointmentRepository:  appointmentRepository,
			NotificationRepository: notificationRepository,
			SettingsUsecase:        settingsUsecase,
			RedisRepository:        redisRepository,
			EventPublisher:         eventPublisher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return appointmentBookingServiceInstance
}

// BookAppointment persists the appointment and then writes the confirmation
// notification. The appointment write is the commit point: a failed
// notification write is queued for the reconciler and reported through
// NotificationStatus instead of failing the booking.
func (s *appointmentBookingService) BookAppointment(ctx context.Context, doctor *models.Doctor, user *models.User, slot *models.ValidatedSlot) (*models.BookingConfirmation, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("appointmentBookingService.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if user == nil || user.ID == "" {
		return nil, exceptions.ErrUnauthenticated(nil)
	}

	template := s.SettingsUsecase.GetNotificationTemplate(ctx)

	appointment := &models.Appointment{
		DoctorID:        doctor.ID.Hex(),
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialty,
		UserID:          user.ID,
		UserEmail:       user.Email,
		AppointmentDate: slot.DateValue(),
		AppointmentTime: slot.Time,
		Status:          constvars.AppointmentStatusPending,
	}

	bookingID, err := s.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		s.Log.Error("appointmentBookingService.BookAppointment error calling AppointmentRepository.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingFailed(err)
	}

	location := utils.LoadLocationOrLocal(s.InternalConfig.App.Timezone)
	notification := buildBookingNotification(template, user, appointment, bookingID, s.InternalConfig.Booking.ConsultationJoinLink, location)

	notificationStatus := constvars.NotificationDeliveryStatusDelivered
	if _, err := s.NotificationRepository.CreateUserNotification(ctx, notification); err != nil {
		s.Log.Warn("appointmentBookingService.BookAppointment error calling NotificationRepository.CreateUserNotification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, bookingID),
			zap.Error(err),
		)
		notificationStatus = s.enqueueNotificationRetry(ctx, bookingID, notification, err)
	}

	s.publishBookingCreated(ctx, appointment, bookingID, notificationStatus)

	s.Log.Info("appointmentBookingService.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, bookingID),
		zap.String(constvars.LoggingNotificationStatusKey, notificationStatus),
	)

	return &models.BookingConfirmation{
		BookingID:          bookingID,
		Appointment:        appointment,
		NotificationStatus: notificationStatus,
	}, nil
}

func (s *appointmentBookingService) enqueueNotificationRetry(ctx context.Context, bookingID string, notification *models.NotificationRecord, cause error) string {
	requestID := utils.GetRequestID(ctx)

	pending := models.PendingNotification{
		AppointmentID: bookingID,
		Notification:  *notification,
		Attempts:      1,
		LastError:     cause.Error(),
	}
	payload, err := json.Marshal(pending)
	if err == nil {
		err = s.RedisRepository.PushToList(ctx, constvars.RedisKeyNotificationRetryQueue, string(payload))
	}
	if err != nil {
		s.Log.Error("appointmentBookingService.enqueueNotificationRetry error pushing to retry queue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, bookingID),
			zap.Error(exceptions.ErrNotificationRetryEnqueue(err)),
		)
		return constvars.NotificationDeliveryStatusFailed
	}

	s.Log.Info("appointmentBookingService.enqueueNotificationRetry queued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, bookingID),
	)
	return constvars.NotificationDeliveryStatusQueued
}

func (s *appointmentBookingService) publishBookingCreated(ctx context.Context, appointment *models.Appointment, bookingID, notificationStatus string) {
	if s.EventPublisher == nil {
		return
	}

	event := &models.BookingEvent{
		EventID:            utils.GenerateEventID(),
		EventType:          constvars.EventTypeBookingCreated,
		AppointmentID:      bookingID,
		UserID:             appointment.UserID,
		DoctorID:           appointment.DoctorID,
		AppointmentDate:    appointment.AppointmentDate,
		AppointmentTime:    appointment.AppointmentTime,
		NotificationStatus: notificationStatus,
		OccurredAt:         models.Now(),
	}
	if err := s.EventPublisher.PublishBookingCreated(ctx, event); err != nil {
		s.Log.Warn("appointmentBookingService.publishBookingCreated error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventIDKey, event.EventID),
			zap.Error(err),
		)
	}
}

func buildBookingNotification(template models.NotificationTemplate, user *models.User, appointment *models.Appointment, bookingID, joinLink string, location *time.Location) *models.NotificationRecord {
	if joinLink == "" {
		joinLink = constvars.DefaultConsultationJoinLink
	}
	message := fmt.Sprintf(constvars.BookingNotificationMessageFormat,
		template.Header,
		user.GreetingName(),
		appointment.DoctorName,
		utils.FormatAppointmentDate(appointment.AppointmentDate, location),
		appointment.AppointmentTime,
		bookingID,
		joinLink,
		template.Footer,
	)

	createdAt := models.Now()
	return &models.NotificationRecord{
		UserID:        user.ID,
		AppointmentID: bookingID,
		Title:         constvars.BookingNotificationTitle,
		Message:       message,
		CreatedAt:     &createdAt,
	}
}
