package identity

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
)

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_AUTHENTICATED_USER_KEY, user)
}

// UserFromContext returns nil when the request carries no verified user.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(constvars.CONTEXT_AUTHENTICATED_USER_KEY).(*models.User)
	return user
}

// RequireAuthenticatedUser fails with UNAUTHENTICATED when no user is present.
func RequireAuthenticatedUser(ctx context.Context) (*models.User, error) {
	user := UserFromContext(ctx)
	if user == nil || user.ID == "" {
		return nil, exceptions.ErrUnauthenticated(nil)
	}
	return user, nil
}
