package appointments

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/app/services/shared/ratelimiter"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	BookingService        contracts.AppointmentBookingService
	SlotResolver          contracts.SlotResolver
	LockService           contracts.LockerService
	RedisRepository       contracts.RedisRepository
	ResourceLimiter       *ratelimiter.ResourceLimiter
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	bookingService contracts.AppointmentBookingService,
	slotResolver contracts.SlotResolver,
	lockService contracts.LockerService,
	redisRepository contracts.RedisRepository,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			BookingService:        bookingService,
			SlotResolver:          slotResolver,
			LockService:           lockService,
			RedisRepository:       redisRepository,
			ResourceLimiter:       resourceLimiter,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) GetAvailableDates(ctx context.Context) (*responses.AvailableDates, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetAvailableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entries := uc.SlotResolver.ComputeUpcomingWeekendDates(models.Now())

	dates := make([]responses.AvailableDate, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, responses.AvailableDate{
			Label: entry.Label,
			Value: entry.Value,
		})
	}

	uc.Log.Info("appointmentUsecase.GetAvailableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAvailableDateCountKey, len(dates)),
	)
	return &responses.AvailableDates{
		Dates:     dates,
		TimeSlots: uc.SlotResolver.TimeSlots(),
	}, nil
}

// CreateAppointment checks the selection, the caller, the slot and the doctor
// in that order before any store is touched, then books under a per-user lock.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment, idempotencyKey string) (*responses.BookingConfirmation, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreateAppointmentRequest(request)
	idempotencyKey = strings.TrimSpace(idempotencyKey)

	if request.Date == "" || request.Time == "" {
		return nil, exceptions.ErrMissingSelection()
	}

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		uc.Log.Info("appointmentUsecase.CreateAppointment rejected unauthenticated caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, err
	}

	slot, err := uc.SlotResolver.ValidateSelection(request.Date, request.Time)
	if err != nil {
		uc.Log.Info("appointmentUsecase.CreateAppointment rejected selection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentDateKey, request.Date),
			zap.String(constvars.LoggingAppointmentTimeKey, request.Time),
			zap.Error(err),
		)
		return nil, err
	}
	if err := uc.SlotResolver.EnsureUpcoming(slot, models.Now()); err != nil {
		return nil, err
	}

	doctor, err := uc.findDoctor(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyBookingLockFormat, user.ID)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, uc.InternalConfig.Booking.LockTTL)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling LockService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingFailed(err)
	}
	if !acquired {
		return nil, exceptions.ErrBookingInProgress(user.ID)
	}
	defer func() {
		if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.CreateAppointment error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	idempotencyRedisKey := ""
	if idempotencyKey != "" {
		idempotencyRedisKey = fmt.Sprintf(constvars.RedisKeyBookingIdempotencyFormat, user.ID, idempotencyKey)
		replayed, err := uc.findIdempotentConfirmation(ctx, idempotencyRedisKey)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			uc.Log.Info("appointmentUsecase.CreateAppointment replayed idempotent request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdempotencyKey, idempotencyKey),
				zap.String(constvars.LoggingAppointmentIDKey, replayed.BookingID),
			)
			return replayed, nil
		}
	}

	if err := uc.applyBookingQuota(ctx, user.ID); err != nil {
		return nil, err
	}

	confirmation, err := uc.BookingService.BookAppointment(ctx, doctor, user, slot)
	if err != nil {
		return nil, err
	}
	response := toBookingConfirmationResponse(confirmation)

	if idempotencyRedisKey != "" {
		err := uc.RedisRepository.Set(ctx, idempotencyRedisKey, response, uc.InternalConfig.Booking.IdempotencyTTL)
		if err != nil {
			uc.Log.Warn("appointmentUsecase.CreateAppointment error storing idempotency record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdempotencyKey, idempotencyKey),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.BookingID),
		zap.String(constvars.LoggingNotificationStatusKey, response.NotificationStatus),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindMyAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindMyAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByUserID(ctx, user.ID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindMyAppointments error calling AppointmentRepository.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, toAppointmentResponse(&appointments[i]))
	}

	uc.Log.Info("appointmentUsecase.FindMyAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindMyAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindMyAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateUrlParamID(appointmentID); err != nil {
		return nil, exceptions.ErrAppointmentNotFound(appointmentID)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindMyAppointmentByID error calling AppointmentRepository.FindAppointmentByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	// Another user's appointment is reported as missing.
	if appointment == nil || appointment.UserID != user.ID {
		return nil, exceptions.ErrAppointmentNotFound(appointmentID)
	}

	response := toAppointmentResponse(appointment)
	uc.Log.Info("appointmentUsecase.FindMyAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)

	if doctorID == "" {
		return nil, exceptions.ErrMissingDoctor()
	}
	if err := utils.ValidateUrlParamID(doctorID); err != nil {
		return nil, exceptions.ErrDoctorNotFound(doctorID)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findDoctor error calling DoctorRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(doctorID)
	}
	return doctor, nil
}

func (uc *appointmentUsecase) findIdempotentConfirmation(ctx context.Context, key string) (*responses.BookingConfirmation, error) {
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Error("appointmentUsecase.findIdempotentConfirmation error calling RedisRepository.Get",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingFailed(err)
	}
	if raw == "" {
		return nil, nil
	}

	var confirmation responses.BookingConfirmation
	if err := json.Unmarshal([]byte(raw), &confirmation); err != nil {
		return nil, exceptions.ErrIdempotencyRecordCorrupted(err, key)
	}
	confirmation.Replayed = true
	return &confirmation, nil
}

// applyBookingQuota fails open when Redis cannot count the booking.
func (uc *appointmentUsecase) applyBookingQuota(ctx context.Context, userID string) error {
	if uc.ResourceLimiter == nil {
		return nil
	}

	output, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:     userID,
		LimiterGroupName: constvars.ResourceLimiterGroupBooking,
		Window:           uc.InternalConfig.Booking.QuotaWindow,
		MaxQuota:         uc.InternalConfig.Booking.QuotaMaxBookings,
		NowUTC:           models.Now(),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.applyBookingQuota error applying booking quota",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil
	}
	if !output.Allowed {
		return exceptions.ErrBookingQuotaExceeded(userID, output.RetryAfter.Round(time.Second).String())
	}
	return nil
}

func toBookingConfirmationResponse(confirmation *models.BookingConfirmation) *responses.BookingConfirmation {
	response := &responses.BookingConfirmation{
		BookingID:          confirmation.BookingID,
		NotificationStatus: confirmation.NotificationStatus,
		Replayed:           confirmation.Replayed,
	}
	if appointment := confirmation.Appointment; appointment != nil {
		response.DoctorName = appointment.DoctorName
		response.AppointmentDate = appointment.AppointmentDate
		response.AppointmentTime = appointment.AppointmentTime
		response.Status = appointment.Status
	}
	return response
}

func toAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:              appointment.ID.Hex(),
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		DoctorSpecialty: appointment.DoctorSpecialty,
		UserID:          appointment.UserID,
		UserEmail:       appointment.UserEmail,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Status:          appointment.Status,
		CreatedAt:       appointment.CreatedAt,
	}
}
