package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"len":            "must be %s characters long",
	"oneof":          "must be one of [%s]",
	"hexadecimal":    "must be a hexadecimal string",
	"not_blank":      "must not be blank",
	"mongo_objectid": "must be a valid identifier",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "You must be logged in to book an appointment."
	ErrClientMissingSelection              = "Please select both a date and a time for your appointment."
	ErrClientInvalidDate                   = "Please select a Saturday or Sunday for the appointment."
	ErrClientDateInPast                    = "Please select an upcoming Saturday or Sunday for the appointment."
	ErrClientInvalidTime                   = "Please select a time between 04:00 PM and 08:00 PM."
	ErrClientMissingDoctor                 = "No doctor selected. Please go back and select a doctor."
	ErrClientDoctorNotFound                = "Doctor not found."
	ErrClientAppointmentNotFound           = "Appointment not found."
	ErrClientNotificationNotFound          = "Notification not found."
	ErrClientBookingFailed                 = "Something went wrong, please check your connection and try again"
	ErrClientBookingInProgress             = "Your previous booking request is still being processed."
	ErrClientBookingQuotaExceeded          = "You have reached the booking limit, please try again later."
	ErrClientEmptyFeedback                 = "Feedback message cannot be empty."
	ErrClientTooManyRequests               = "Too many requests, please slow down."
	ErrClientRequestBodyTooLarge           = "Request body is too large."
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "request validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON            = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process the request"
	ErrDevMissingRequestID             = "request id is missing from context"
	ErrDevURLParamMissing              = "url param %s is missing"
	ErrDevMissingSelection             = "appointment date or time is missing"
	ErrDevInvalidDateWeekday           = "appointment date %s falls on %s, expected Saturday or Sunday"
	ErrDevInvalidDateFormat            = "appointment date %q cannot be parsed"
	ErrDevDateInPast                   = "appointment date %s is not after %s"
	ErrDevInvalidTime                  = "appointment time %q is not one of the fixed slots"
	ErrDevUnauthenticated              = "no authenticated user for the request"
	ErrDevAuthTokenInvalidOrExpired    = "identity token invalid or expired"
	ErrDevMissingDoctor                = "doctor id is missing"
	ErrDevDoctorNotFound               = "doctor %s not found"
	ErrDevAppointmentNotFound          = "appointment %s not found"
	ErrDevNotificationNotFound         = "notification %s not found"
	ErrDevBookingFailed                = "failed to persist appointment"
	ErrDevBookingInProgress            = "booking lock for user %s already held"
	ErrDevBookingQuotaExceeded         = "booking quota exceeded for user %s, retry after %s"
	ErrDevEmptyFeedback                = "feedback message is empty"
	ErrDevDBFailedToFindDocument       = "failed to find document"
	ErrDevDBFailedToInsertDocument     = "failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "failed to update document"
	ErrDevDBFailedToIterateDocuments   = "failed to iterate documents"
	ErrDevDBStringNotObjectID          = "string is not a valid object id"
	ErrDevDBSchemaMismatch             = "document in %s does not match the expected schema: %s"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisGetNoData               = "no data found in redis for key %s"
	ErrDevRedisSetData                 = "failed to set data to redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRedisRightPushToList         = "failed to push value to redis list"
	ErrDevRedisLeftPopList             = "failed to pop value from redis list"
	ErrDevRedisExpire                  = "failed to refresh redis key expiration"
	ErrDevRedisMoveListItem            = "failed to move value between redis lists"
	ErrDevRedisRemoveFromList          = "failed to remove value from redis list"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevMinioPresignedURL            = "failed to create presigned url in bucket %s"
	ErrDevMinioUploadObject            = "failed to upload object to bucket %s"
	ErrDevRateLimited                  = "rate limit exceeded"
	ErrDevRequestBodyTooLarge          = "request body exceeds %d bytes"
	ErrDevNoWeekendDatesInScanWindow   = "weekend scan of %d days from %s did not find both a Saturday and a Sunday"
	ErrDevNotificationRetryEnqueue     = "failed to enqueue notification for retry"
	ErrDevNotificationRetryDeadLetter  = "notification retry exhausted after %d attempts"
	ErrDevIdempotencyRecordCorrupted   = "idempotency record for key %s cannot be decoded"
	ErrDevSettingsCacheRecordCorrupted = "settings cache record cannot be decoded"
)
