package config

import "time"

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		Region   string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		JWT      AppJWT
		Booking  AppBooking
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		ShutdownTimeoutInSeconds   int
		RequestBodyLimitInMegabyte int
		RequestTimeout             time.Duration
	}

	AppJWT struct {
		Secret string
		Issuer string
	}

	AppBooking struct {
		ConsultationJoinLink string
		LockTTL              time.Duration
		IdempotencyTTL       time.Duration
		SettingsCacheTTL     time.Duration
		// SubmitRatePerMinute caps POST /appointments per client.
		SubmitRatePerMinute int
		SubmitBurst         int
		// QuotaMaxBookings caps bookings per user per QuotaWindow across instances.
		QuotaMaxBookings int
		QuotaWindow      time.Duration

		ReconcilerCronSpec      string
		ReconcilerBatchSize     int
		ReconcilerLockTTL       time.Duration
		NotificationMaxAttempts int
	}

	AppMinio struct {
		BucketName         string
		PresignedURLExpiry time.Duration
	}

	AppRabbitMQ struct {
		BookingEventQueue string
	}
)
