package config

import (
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doccare"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			Region:   utils.GetEnvString("MINIO_REGION", "us-east-1"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RequestTimeout:             utils.GetEnvDuration("APP_REQUEST_TIMEOUT", 10*time.Second),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
			Issuer: utils.GetEnvString("JWT_ISSUER", ""),
		},
		Booking: AppBooking{
			ConsultationJoinLink:    utils.GetEnvString("BOOKING_CONSULTATION_JOIN_LINK", "https://zoom.us/j/1234567890"),
			LockTTL:                 utils.GetEnvDuration("BOOKING_LOCK_TTL", 30*time.Second),
			IdempotencyTTL:          utils.GetEnvDuration("BOOKING_IDEMPOTENCY_TTL", 24*time.Hour),
			SettingsCacheTTL:        utils.GetEnvDuration("BOOKING_SETTINGS_CACHE_TTL", 5*time.Minute),
			SubmitRatePerMinute:     utils.GetEnvInt("BOOKING_SUBMIT_RATE_PER_MINUTE", 6),
			SubmitBurst:             utils.GetEnvInt("BOOKING_SUBMIT_BURST", 2),
			QuotaMaxBookings:        utils.GetEnvInt("BOOKING_QUOTA_MAX_BOOKINGS", 5),
			QuotaWindow:             utils.GetEnvDuration("BOOKING_QUOTA_WINDOW", 24*time.Hour),
			ReconcilerCronSpec:      utils.GetEnvString("BOOKING_RECONCILER_CRON_SPEC", constvars.DefaultReconcilerCronSpec),
			ReconcilerBatchSize:     utils.GetEnvInt("BOOKING_RECONCILER_BATCH_SIZE", 50),
			ReconcilerLockTTL:       utils.GetEnvDuration("BOOKING_RECONCILER_LOCK_TTL", 55*time.Second),
			NotificationMaxAttempts: utils.GetEnvInt("BOOKING_NOTIFICATION_MAX_ATTEMPTS", 5),
		},
		Minio: AppMinio{
			BucketName:         utils.GetEnvString("APP_MINIO_BUCKET_NAME", "doctor-portraits"),
			PresignedURLExpiry: utils.GetEnvDuration("APP_MINIO_PRESIGNED_URL_EXPIRY", time.Hour),
		},
		RabbitMQ: AppRabbitMQ{
			BookingEventQueue: utils.GetEnvString("APP_RABBITMQ_BOOKING_EVENT_QUEUE", "booking_events"),
		},
	}
}
