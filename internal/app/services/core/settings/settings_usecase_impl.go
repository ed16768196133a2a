package settings

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type settingsUsecase struct {
	SettingsRepository contracts.SettingsRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	settingsUsecaseInstance contracts.SettingsUsecase
	onceSettingsUsecase     sync.Once
)

func NewSettingsUsecase(
	settingsRepository contracts.SettingsRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SettingsUsecase {
	onceSettingsUsecase.Do(func() {
		settingsUsecaseInstance = &settingsUsecase{
			SettingsRepository: settingsRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return settingsUsecaseInstance
}

func (uc *settingsUsecase) GetNotificationTemplate(ctx context.Context) models.NotificationTemplate {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("settingsUsecase.GetNotificationTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	settings, cacheHit, err := uc.findSettings(ctx)
	if err != nil {
		uc.Log.Warn("settingsUsecase.GetNotificationTemplate falling back to default template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	template := models.NotificationTemplate{
		Header: constvars.DefaultNotificationHeader,
		Footer: constvars.DefaultNotificationFooter,
	}
	if settings != nil {
		if settings.Header != "" {
			template.Header = settings.Header
		}
		if settings.Footer != "" {
			template.Footer = settings.Footer
		}
	}

	uc.Log.Info("settingsUsecase.GetNotificationTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSettingsCacheHitKey, cacheHit),
	)
	return template
}

// findSettings reads through the Redis cache. A cache failure is logged and
// the store is consulted directly.
func (uc *settingsUsecase) findSettings(ctx context.Context) (*models.Settings, bool, error) {
	requestID := utils.GetRequestID(ctx)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeySettingsCustomContent)
	if err != nil {
		uc.Log.Warn("settingsUsecase.findSettings error reading settings cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		var settings models.Settings
		decodeErr := json.Unmarshal([]byte(cached), &settings)
		if decodeErr == nil {
			return &settings, true, nil
		}
		uc.Log.Warn("settingsUsecase.findSettings dropping corrupted cache record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrSettingsCacheRecordCorrupted(decodeErr)),
		)
	}

	settings, err := uc.SettingsRepository.FindCustomContent(ctx)
	if err != nil {
		return nil, false, err
	}
	if settings == nil {
		settings = &models.Settings{ID: constvars.MongoSettingsCustomContentDocumentID}
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeySettingsCustomContent, settings, uc.InternalConfig.Booking.SettingsCacheTTL); err != nil {
		uc.Log.Warn("settingsUsecase.findSettings error writing settings cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return settings, false, nil
}
