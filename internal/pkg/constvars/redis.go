package constvars

const (
	RedisKeyBookingLockFormat          = "booking:lock:%s"
	RedisKeyBookingIdempotencyFormat   = "booking:idempotency:%s:%s"
	RedisKeySettingsCustomContent      = "settings:customContent"
	RedisKeyNotificationRetryQueue     = "booking:notification:retry"
	RedisKeyNotificationDeadLetter     = "booking:notification:dead"
	RedisKeyNotificationProcessing     = "booking:notification:processing"
	RedisKeyNotificationReconcilerLock = "booking:notification:reconciler:leader"
)

const (
	RedisKeyResourceLimiterFormat = "ratelimit:%s:%s:%d"
	ResourceLimiterGroupBooking   = "BOOKING"
)
