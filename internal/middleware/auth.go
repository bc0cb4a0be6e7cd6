package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	userIDKey    = constants.UserIDContextKey
	userEmailKey = constants.UserEmailContextKey
)

var ErrInvalidToken = errors.New("invalid token")

// SupabaseClaims is the claim set issued by Supabase Auth.
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies bearer tokens signed either with the shared HS256
// project secret or with a key from the project's JWKS.
type Authenticator struct {
	secret   []byte
	jwks     *keyfunc.JWKS
	audience string
	logger   *zap.Logger
}

// AuthConfig configures NewAuthenticator. At least one of Secret or
// JWKSURL must be set.
type AuthConfig struct {
	Secret   string
	JWKSURL  string
	Audience string
}

func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	if cfg.Secret == "" && cfg.JWKSURL == "" {
		return nil, errors.New("auth requires a JWT secret or a JWKS url")
	}

	a := &Authenticator{
		secret:   []byte(cfg.Secret),
		audience: cfg.Audience,
		logger:   logger.ForComponent(logger.Log, logger.ComponentAuth),
	}

	if cfg.JWKSURL != "" {
		jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			RefreshInterval:  time.Hour,
			RefreshRateLimit: time.Minute,
			RefreshTimeout:   10 * time.Second,
			RefreshErrorHandler: func(err error) {
				a.logger.Error("JWKS refresh error", zap.Error(err))
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS: %w", err)
		}
		a.jwks = jwks
	}

	return a, nil
}

// Close stops the JWKS background refresh.
func (a *Authenticator) Close() {
	if a.jwks != nil {
		a.jwks.EndBackground()
	}
}

func (a *Authenticator) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		if len(a.secret) == 0 {
			return nil, fmt.Errorf("%w: HMAC tokens are not accepted", ErrInvalidToken)
		}
		return a.secret, nil
	}
	if a.jwks == nil {
		return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
	}
	return a.jwks.Keyfunc(token)
}

// ValidateToken parses a bearer token, with or without the "Bearer " prefix.
func (a *Authenticator) ValidateToken(raw string) (*SupabaseClaims, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "RS256", "ES256"}),
		jwt.WithExpirationRequired(),
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	claims := &SupabaseClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, a.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's user id and email on the context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.AuthorizationHeader)
		if header == "" {
			abortUnauthorized(c, "No authentication provided")
			return
		}

		claims, err := a.ValidateToken(header)
		if err != nil {
			a.logger.Debug("Token validation failed",
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			a.logger.Debug("Token subject is not a uuid", zap.String("sub", claims.Subject))
			abortUnauthorized(c, "Invalid token subject")
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
		Error:         msg,
		CorrelationID: GetCorrelationID(c),
	})
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
