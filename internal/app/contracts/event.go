package contracts

import (
	"context"
	"doccare-service/internal/app/models"
)

type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error
}
