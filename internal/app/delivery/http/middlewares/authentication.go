package middlewares

import (
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a user on the request context.
// Requests without a valid token pass through anonymously; operations that
// need a user reject them with UNAUTHENTICATED.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.IdentityProvider.Verify(r.Context(), authHeader)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected bearer token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.WithUser(r.Context(), user)))
	})
}
