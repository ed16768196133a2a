package middlewares

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	IdentityProvider contracts.IdentityProvider
	InternalConfig   *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, identityProvider contracts.IdentityProvider, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:              logger,
		IdentityProvider: identityProvider,
		InternalConfig:   internalConfig,
	}
}
