package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitRule applies a token bucket to every path under Prefix.
type RateLimitRule struct {
	Prefix            string
	RequestsPerSecond float64
	Burst             int
}

// DefaultRateLimitRules is strict on booking mutations and relaxed on the
// public event reads.
func DefaultRateLimitRules() (RateLimitRule, []RateLimitRule) {
	fallback := RateLimitRule{Prefix: "/", RequestsPerSecond: 50, Burst: 100}
	return fallback, []RateLimitRule{
		{Prefix: "/api/v1/bookings", RequestsPerSecond: 5, Burst: 10},
		{Prefix: "/api/v1/events", RequestsPerSecond: 100, Burst: 200},
	}
}

// RateLimiter keeps one limiter per (rule prefix, client) pair.
type RateLimiter struct {
	fallback RateLimitRule
	rules    []RateLimitRule
	exempt   map[string]bool

	limiters        sync.Map
	cleanupInterval time.Duration
	idleTTL         time.Duration
	stop            chan struct{}
	stopOnce        sync.Once

	onLimited func(prefix string)
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess atomic.Int64
}

// NewRateLimiter starts a background sweep of idle limiters; call Close to
// stop it.
func NewRateLimiter(fallback RateLimitRule, rules ...RateLimitRule) *RateLimiter {
	rl := &RateLimiter{
		fallback:        fallback,
		rules:           rules,
		exempt:          map[string]bool{"/health": true, "/metrics": true},
		cleanupInterval: 5 * time.Minute,
		idleTTL:         10 * time.Minute,
		stop:            make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// OnLimited registers a callback invoked with the rule prefix of every
// rejected request.
func (rl *RateLimiter) OnLimited(fn func(prefix string)) *RateLimiter {
	rl.onLimited = fn
	return rl
}

func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.limiters.Range(func(key, value interface{}) bool {
		entry := value.(*limiterEntry)
		if now.Sub(time.Unix(0, entry.lastAccess.Load())) > rl.idleTTL {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// ruleFor picks the longest matching prefix.
func (rl *RateLimiter) ruleFor(path string) RateLimitRule {
	best := rl.fallback
	matched := -1
	for _, rule := range rl.rules {
		if strings.HasPrefix(path, rule.Prefix) && len(rule.Prefix) > matched {
			best = rule
			matched = len(rule.Prefix)
		}
	}
	return best
}

func (rl *RateLimiter) getLimiter(key string, rule RateLimitRule) *rate.Limiter {
	now := time.Now().UnixNano()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.lastAccess.Store(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rule.RequestsPerSecond), rule.Burst)}
	entry.lastAccess.Store(now)
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func clientIdentifier(c *gin.Context) string {
	if userID, exists := c.Get(userIDKey); exists {
		return fmt.Sprintf("user:%v", userID)
	}
	// ClientIP reads forwarding headers only from the engine's trusted proxies.
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware rejects requests over the limit with 429 and Retry-After.
// Install it after authentication so signed-in users are keyed by user id.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if rl.exempt[path] {
			c.Next()
			return
		}

		rule := rl.ruleFor(path)
		key := rule.Prefix + "|" + clientIdentifier(c)
		limiter := rl.getLimiter(key, rule)

		reservation := limiter.Reserve()
		delay := reservation.Delay()
		if !reservation.OK() || delay > 0 {
			reservation.Cancel()
			retryAfter := int(math.Ceil(delay.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}

			LogWithCorrelationID(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("component", string(logger.ComponentMiddleware)),
				zap.String("key", key),
				zap.String("method", c.Request.Method),
				zap.String("path", path),
			)
			if rl.onLimited != nil {
				rl.onLimited(rule.Prefix)
			}

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Burst))
			c.Header("X-RateLimit-Remaining", "0")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Error:         "Too many requests. Please try again later.",
				CorrelationID: GetCorrelationID(c),
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}
