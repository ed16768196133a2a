package contracts

import (
	"context"
	"doccare-service/internal/app/models"
)

type IdentityProvider interface {
	// Verify returns the user carried by a bearer token.
	Verify(ctx context.Context, bearerToken string) (*models.User, error)
}
