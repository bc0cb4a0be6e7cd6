package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SupabaseClaims{
		Email: "booker@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func TestCorrelationIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		assert.Equal(t, GetCorrelationID(c), CorrelationIDFromContext(c.Request.Context()))
		c.String(http.StatusOK, GetCorrelationID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(constants.CorrelationIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagates inbound id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constants.CorrelationIDHeader, "abc-123")
		router.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(constants.CorrelationIDHeader))
	})
}

func TestRequireAuth(t *testing.T) {
	auth, err := NewAuthenticator(AuthConfig{Secret: testJWTSecret, Audience: "authenticated"})
	require.NoError(t, err)

	userID := uuid.New()
	router := gin.New()
	router.Use(CorrelationIDMiddleware(), auth.RequireAuth())
	router.GET("/me", func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": GetUserEmail(c)})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + signToken(t, userID.String(), time.Now().Add(time.Hour)), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, userID.String(), time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"non uuid subject", "Bearer " + signToken(t, "service-role", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(constants.AuthorizationHeader, tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
				assert.Contains(t, w.Body.String(), "booker@example.com")
			} else {
				assert.Contains(t, w.Body.String(), "correlation_id")
			}
		})
	}
}

func TestNewAuthenticator_RequiresKeyMaterial(t *testing.T) {
	_, err := NewAuthenticator(AuthConfig{})
	assert.Error(t, err)
}

func TestRateLimiter(t *testing.T) {
	newRouter := func(rl *RateLimiter) *gin.Engine {
		router := gin.New()
		_ = router.SetTrustedProxies(nil)
		router.Use(rl.Middleware())
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		router.GET("/health", ok)
		router.POST("/api/v1/bookings/:id/refund", ok)
		router.GET("/api/v1/events/:id/refund-policy", ok)
		return router
	}
	do := func(router *gin.Engine, method, path, ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = ip + ":40000"
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("strict prefix blocks after burst", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitRule{Prefix: "/", RequestsPerSecond: 100, Burst: 100},
			RateLimitRule{Prefix: "/api/v1/bookings", RequestsPerSecond: 1, Burst: 2})
		defer rl.Close()
		var limited []string
		rl.OnLimited(func(prefix string) { limited = append(limited, prefix) })
		router := newRouter(rl)

		assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/api/v1/bookings/1/refund", "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/api/v1/bookings/2/refund", "10.0.0.1").Code)
		w := do(router, http.MethodPost, "/api/v1/bookings/3/refund", "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, []string{"/api/v1/bookings"}, limited)

		// other prefixes and other clients keep their own buckets
		assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/v1/events/1/refund-policy", "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/api/v1/bookings/1/refund", "10.0.0.2").Code)
	})

	t.Run("health is exempt", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitRule{Prefix: "/", RequestsPerSecond: 1, Burst: 1})
		defer rl.Close()
		router := newRouter(rl)
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", "10.0.0.3").Code)
		}
	})

	t.Run("authenticated users are keyed by id", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitRule{Prefix: "/", RequestsPerSecond: 1, Burst: 1})
		defer rl.Close()
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set(userIDKey, uuid.MustParse(c.GetHeader("X-Test-User")))
		}, rl.Middleware())
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		call := func(user string) int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("X-Test-User", user)
			router.ServeHTTP(w, req)
			return w.Code
		}
		a, b := uuid.NewString(), uuid.NewString()
		assert.Equal(t, http.StatusOK, call(a))
		assert.Equal(t, http.StatusTooManyRequests, call(a))
		assert.Equal(t, http.StatusOK, call(b))
	})

	t.Run("forged forwarding headers do not get a fresh bucket", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitRule{Prefix: "/", RequestsPerSecond: 1, Burst: 1})
		defer rl.Close()
		router := newRouter(rl)

		call := func(forwardedFor string) int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/events/1/refund-policy", nil)
			req.RemoteAddr = "10.0.0.7:40000"
			req.Header.Set(constants.ForwardedForHeader, forwardedFor)
			router.ServeHTTP(w, req)
			return w.Code
		}
		assert.Equal(t, http.StatusOK, call("198.51.100.1"))
		assert.Equal(t, http.StatusTooManyRequests, call("198.51.100.2"))
	})

	t.Run("trusted proxy forwards distinct clients", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitRule{Prefix: "/", RequestsPerSecond: 1, Burst: 1})
		defer rl.Close()
		router := newRouter(rl)
		require.NoError(t, router.SetTrustedProxies([]string{"10.0.0.0/8"}))

		call := func(forwardedFor string) int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/events/1/refund-policy", nil)
			req.RemoteAddr = "10.0.0.7:40000"
			req.Header.Set(constants.ForwardedForHeader, forwardedFor)
			router.ServeHTTP(w, req)
			return w.Code
		}
		assert.Equal(t, http.StatusOK, call("198.51.100.1"))
		assert.Equal(t, http.StatusOK, call("198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, call("198.51.100.2"))
	})

	t.Run("sweep drops idle limiters", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitRule{Prefix: "/", RequestsPerSecond: 1, Burst: 1})
		defer rl.Close()
		rl.getLimiter("k", rl.fallback)
		rl.sweep(time.Now().Add(time.Hour))
		_, ok := rl.limiters.Load("k")
		assert.False(t, ok)
	})
}

func TestRuleFor_LongestPrefix(t *testing.T) {
	fallback, rules := DefaultRateLimitRules()
	rl := NewRateLimiter(fallback, rules...)
	defer rl.Close()

	assert.Equal(t, "/api/v1/bookings", rl.ruleFor("/api/v1/bookings/123/refund").Prefix)
	assert.Equal(t, "/api/v1/events", rl.ruleFor("/api/v1/events/1/refund-policy").Prefix)
	assert.Equal(t, "/", rl.ruleFor("/swagger/index.html").Prefix)
}
