package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPatch   = "PATCH"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusRequestTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderContentType     = "Content-Type"
	HeaderAccept          = "Accept"
	HeaderLocation        = "Location"
	HeaderRetryAfter      = "Retry-After"
	HeaderXRequestID      = "X-Request-ID"
	HeaderXCSRFToken      = "X-CSRF-Token"
	HeaderIdempotencyKey  = "Idempotency-Key"
	HeaderLink            = "Link"
)

const (
	WWWAuthenticateBearer = `Bearer realm="doccare"`
)
