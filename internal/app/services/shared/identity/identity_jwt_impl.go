package identity

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var (
	identityProviderInstance *jwtIdentityProvider
	onceIdentityProvider     sync.Once
)

var errMissingSubject = errors.New("token has no subject")

// IDTokenClaims is the payload of a bearer ID token.
type IDTokenClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type jwtIdentityProvider struct {
	secret []byte
	issuer string
	Log    *zap.Logger
}

// NewJWTIdentityProvider verifies HS256 ID tokens. An empty issuer disables
// the issuer check.
func NewJWTIdentityProvider(secret, issuer string, logger *zap.Logger) contracts.IdentityProvider {
	onceIdentityProvider.Do(func() {
		identityProviderInstance = &jwtIdentityProvider{
			secret: []byte(secret),
			issuer: issuer,
			Log:    logger,
		}
	})
	return identityProviderInstance
}

func (p *jwtIdentityProvider) Verify(ctx context.Context, bearerToken string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)

	tokenString := strings.TrimSpace(strings.TrimPrefix(bearerToken, constvars.BearerTokenPrefix))
	if tokenString == "" {
		return nil, exceptions.ErrUnauthenticated(nil)
	}

	claims := new(IDTokenClaims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		p.Log.Info("jwtIdentityProvider.Verify rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	if p.issuer != "" && !claims.VerifyIssuer(p.issuer, true) {
		err := fmt.Errorf("unexpected issuer %q", claims.Issuer)
		p.Log.Info("jwtIdentityProvider.Verify rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims.Subject == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errMissingSubject)
	}

	return &models.User{
		ID:          claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}

// IssueToken signs an ID token for user. It is used by operator tooling and
// tests; production tokens come from the identity service.
func IssueToken(secret, issuer string, user *models.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := IDTokenClaims{
		Email: user.Email,
		Name:  user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
