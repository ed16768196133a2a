package constvars

import "time"

type ContextKey string

const (
	ResourceAppointments  = "appointments"
	ResourceDoctors       = "doctors"
	ResourceNotifications = "notifications"
	ResourceFeedback      = "feedback"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTHENTICATED_USER_KEY   ContextKey = "authenticated_user"
)

const (
	REQUEST_ID_PREFIX = "DOCCARE_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	BearerTokenPrefix = "Bearer "
)

const (
	DefaultRequestTimeout = 10 * time.Second
	HealthCheckTimeout    = 3 * time.Second
)

const (
	DefaultReconcilerCronSpec = "@every 1m"
)
