package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingErrorCodeKey      = "error_code"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingLocationKey       = "location"
	LoggingIsClientRequestID = "is_client_request_id"
)

const (
	LoggingUserIDKey             = "user_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingDoctorCountKey        = "doctor_count"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentDateKey    = "appointment_date"
	LoggingAppointmentTimeKey    = "appointment_time"
	LoggingAppointmentCountKey   = "appointment_count"
	LoggingNotificationIDKey     = "notification_id"
	LoggingNotificationCountKey  = "notification_count"
	LoggingNotificationStatusKey = "notification_status"
	LoggingAvailableDateCountKey = "available_date_count"
	LoggingReferenceInstantKey   = "reference_instant"
	LoggingIdempotencyKey        = "idempotency_key"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueNameKey          = "queue_name"
	LoggingEventTypeKey          = "event_type"
	LoggingEventIDKey            = "event_id"
	LoggingRetryAttemptKey       = "retry_attempt"
	LoggingRetryBatchSizeKey     = "retry_batch_size"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingFeedbackIDKey         = "feedback_id"
	LoggingSettingsCacheHitKey   = "settings_cache_hit"
)
