package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/handlers"
	"github.com/eventbook/eventbook-api/internal/idempotency"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/metrics"
	"github.com/eventbook/eventbook-api/internal/middleware"
	"github.com/eventbook/eventbook-api/internal/mocks"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/testutil"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters"

type routerFixture struct {
	refunds  *mocks.MockBookingRefundService
	policies *mocks.MockRefundPolicyService
	router   *gin.Engine
	userID   uuid.UUID
	token    string
}

func newRouterFixture(t *testing.T, limiter *middleware.RateLimiter) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		refunds:  mocks.NewMockBookingRefundService(ctrl),
		policies: mocks.NewMockRefundPolicyService(ctrl),
		userID:   uuid.New(),
	}

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{Secret: testJWTSecret, Audience: "authenticated"})
	require.NoError(t, err)
	t.Cleanup(auth.Close)

	store, err := idempotency.Open(filepath.Join(t.TempDir(), "idem.db"), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	if limiter == nil {
		fallback, rules := middleware.DefaultRateLimitRules()
		limiter = middleware.NewRateLimiter(fallback, rules...)
	}
	t.Cleanup(limiter.Close)

	common := handlers.NewCommonServices(nil)
	router := gin.New()
	RegisterRoutes(router, Dependencies{
		Health:      handlers.NewHealthHandler(nil),
		Refunds:     handlers.NewRefundHandler(common, f.refunds, mocks.NewMockWithdrawalService(ctrl)),
		Policies:    handlers.NewPolicyHandler(common, f.policies),
		Tickets:     handlers.NewTicketHandler(common, mocks.NewMockTicketService(ctrl)),
		Auth:        auth.RequireAuth(),
		RateLimiter: limiter,
		Idempotency: idempotency.NewGuard(store),
		Metrics:     metrics.NewRecorder(prometheus.NewRegistry()).Handler(),
	})
	f.router = router

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.SupabaseClaims{
		Email: "booker@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   f.userID.String(),
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	f.token, err = token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return f
}

func (f *routerFixture) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(nil))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	f.router.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_Operational(t *testing.T) {
	f := newRouterFixture(t, nil)

	w := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(constants.CorrelationIDHeader))

	w = f.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eventbook_")

	w = f.do(http.MethodPost, "/webhooks/stripe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "webhook route is only mounted when configured")
}

func TestRegisterRoutes_BookingsRequireAuth(t *testing.T) {
	f := newRouterFixture(t, nil)
	w := f.do(http.MethodPost, "/api/v1/bookings/"+uuid.NewString()+"/refund", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRoutes_RefundIsIdempotent(t *testing.T) {
	f := newRouterFixture(t, nil)
	booking := testutil.NewPaidBooking(uuid.New(), f.userID, 5000)
	booking.Status = constants.BookingStatusRefunded

	f.refunds.EXPECT().RequestRefund(gomock.Any(), gomock.Any()).
		Return(&business.RefundResult{
			Booking: booking,
			Refund:  db.Refund{ID: uuid.New(), BookingID: booking.ID, AmountCents: 5000, Status: constants.RefundStatusSucceeded},
		}, nil).
		Times(1)

	headers := map[string]string{
		constants.AuthorizationHeader:  "Bearer " + f.token,
		constants.IdempotencyKeyHeader: "refund-once",
	}
	path := "/api/v1/bookings/" + booking.ID.String() + "/refund"

	first := f.do(http.MethodPost, path, headers)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Empty(t, first.Header().Get(constants.IdempotentReplayHeader))

	second := f.do(http.MethodPost, path, headers)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(constants.IdempotentReplayHeader))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestRegisterRoutes_PublicPolicyIsRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(middleware.RateLimitRule{Prefix: "/", RequestsPerSecond: 0.01, Burst: 1})
	f := newRouterFixture(t, limiter)
	f.policies.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(nil, services.ErrEventNotFound).Times(1)

	path := "/api/v1/events/" + uuid.NewString() + "/refund-policy"
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, path, nil).Code)

	w := f.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestConfigureCORS(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://app.eventbook.test, http://localhost:3000")
	router := gin.New()
	router.Use(configureCORS())
	router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.eventbook.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", constants.IdempotencyKeyHeader)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.eventbook.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestConfigureTrustedProxies(t *testing.T) {
	clientIP := func(router *gin.Engine) string {
		var got string
		router.GET("/ip", func(c *gin.Context) { got = c.ClientIP() })
		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.RemoteAddr = "10.1.2.3:40000"
		req.Header.Set(constants.ForwardedForHeader, "203.0.113.7")
		router.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	t.Run("no proxy trusted by default", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "")
		router := gin.New()
		configureTrustedProxies(router)
		assert.Equal(t, "10.1.2.3", clientIP(router))
	})

	t.Run("configured proxy forwards the client address", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")
		router := gin.New()
		configureTrustedProxies(router)
		assert.Equal(t, "203.0.113.7", clientIP(router))
	})

	t.Run("invalid list trusts nothing", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "not-an-ip")
		router := gin.New()
		configureTrustedProxies(router)
		assert.Equal(t, "10.1.2.3", clientIP(router))
	})
}
