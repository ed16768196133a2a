package notifications

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

// FindMyNotifications merges the general feed with the caller's inbox,
// newest first. Entries without a creation time are left out.
func (uc *notificationUsecase) FindMyNotifications(ctx context.Context) ([]responses.Notification, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.FindMyNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	general, err := uc.NotificationRepository.FindGeneral(ctx)
	if err != nil {
		uc.Log.Error("notificationUsecase.FindMyNotifications error calling NotificationRepository.FindGeneral",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	personal, err := uc.NotificationRepository.FindByUserID(ctx, user.ID)
	if err != nil {
		uc.Log.Error("notificationUsecase.FindMyNotifications error calling NotificationRepository.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Notification, 0, len(general)+len(personal))
	for i := range general {
		if general[i].CreatedAt != nil {
			response = append(response, toNotificationResponse(&general[i], constvars.NotificationScopeGeneral))
		}
	}
	for i := range personal {
		if personal[i].CreatedAt != nil {
			response = append(response, toNotificationResponse(&personal[i], constvars.NotificationScopePersonal))
		}
	}
	sort.SliceStable(response, func(i, j int) bool {
		return response[i].CreatedAt.After(response[j].CreatedAt)
	})

	uc.Log.Info("notificationUsecase.FindMyNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingNotificationCountKey, len(response)),
	)
	return response, nil
}

// FindMyNotificationByID looks in the general feed first, then the caller's inbox.
func (uc *notificationUsecase) FindMyNotificationByID(ctx context.Context, notificationID string) (*responses.Notification, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.FindMyNotificationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateUrlParamID(notificationID); err != nil {
		return nil, exceptions.ErrNotificationNotFound(notificationID)
	}

	notification, err := uc.NotificationRepository.FindGeneralByID(ctx, notificationID)
	if err != nil {
		uc.Log.Error("notificationUsecase.FindMyNotificationByID error calling NotificationRepository.FindGeneralByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	scope := constvars.NotificationScopeGeneral

	if notification == nil {
		notification, err = uc.NotificationRepository.FindUserNotificationByID(ctx, user.ID, notificationID)
		if err != nil {
			uc.Log.Error("notificationUsecase.FindMyNotificationByID error calling NotificationRepository.FindUserNotificationByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		scope = constvars.NotificationScopePersonal
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotFound(notificationID)
	}

	response := toNotificationResponse(notification, scope)
	uc.Log.Info("notificationUsecase.FindMyNotificationByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)
	return &response, nil
}

func (uc *notificationUsecase) MarkAsRead(ctx context.Context, notificationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.MarkAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	user, err := identity.RequireAuthenticatedUser(ctx)
	if err != nil {
		return err
	}
	if err := utils.ValidateUrlParamID(notificationID); err != nil {
		return exceptions.ErrNotificationNotFound(notificationID)
	}

	matched, err := uc.NotificationRepository.MarkAsRead(ctx, user.ID, notificationID)
	if err != nil {
		uc.Log.Error("notificationUsecase.MarkAsRead error calling NotificationRepository.MarkAsRead",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !matched {
		return exceptions.ErrNotificationNotFound(notificationID)
	}

	uc.Log.Info("notificationUsecase.MarkAsRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)
	return nil
}

func toNotificationResponse(notification *models.NotificationRecord, scope string) responses.Notification {
	response := responses.Notification{
		ID:      notification.ID.Hex(),
		Title:   notification.Title,
		Message: notification.Message,
		Read:    notification.Read,
		Scope:   scope,
	}
	if notification.CreatedAt != nil {
		response.CreatedAt = *notification.CreatedAt
	}
	return response
}
