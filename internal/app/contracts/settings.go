package contracts

import (
	"context"
	"doccare-service/internal/app/models"
)

type SettingsRepository interface {
	FindCustomContent(ctx context.Context) (*models.Settings, error)
	UpsertCustomContent(ctx context.Context, settings *models.Settings) error
}

type SettingsUsecase interface {
	// GetNotificationTemplate never fails; missing or unreadable settings
	// yield the default header and footer.
	GetNotificationTemplate(ctx context.Context) models.NotificationTemplate
}
