package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	GetAvailableDates(ctx context.Context) (*responses.AvailableDates, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment, idempotencyKey string) (*responses.BookingConfirmation, error)
	FindMyAppointments(ctx context.Context) ([]responses.Appointment, error)
	FindMyAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
}

type AppointmentBookingService interface {
	BookAppointment(ctx context.Context, doctor *models.Doctor, user *models.User, slot *models.ValidatedSlot) (*models.BookingConfirmation, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
}

type NotificationReconciler interface {
	ReconcileOnce(ctx context.Context) (int, error)
}
