package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	FindMyNotifications(ctx context.Context) ([]responses.Notification, error)
	FindMyNotificationByID(ctx context.Context, notificationID string) (*responses.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string) error
}

type NotificationRepository interface {
	// CreateUserNotification is idempotent per (userId, appointmentId) when
	// AppointmentID is set.
	CreateUserNotification(ctx context.Context, notification *models.NotificationRecord) (string, error)
	FindGeneral(ctx context.Context) ([]models.NotificationRecord, error)
	FindByUserID(ctx context.Context, userID string) ([]models.NotificationRecord, error)
	FindGeneralByID(ctx context.Context, notificationID string) (*models.NotificationRecord, error)
	FindUserNotificationByID(ctx context.Context, userID, notificationID string) (*models.NotificationRecord, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) (bool, error)
}
