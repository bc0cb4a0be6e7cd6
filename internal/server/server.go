package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	awsclient "github.com/eventbook/eventbook-api/internal/client/aws"
	stripeclient "github.com/eventbook/eventbook-api/internal/client/payment/stripe"
	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/handlers"
	"github.com/eventbook/eventbook-api/internal/helpers"
	"github.com/eventbook/eventbook-api/internal/idempotency"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/metrics"
	"github.com/eventbook/eventbook-api/internal/middleware"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	defaultIdempotencyDBPath = "/tmp/eventbook-idempotency.db"
	idempotencyTTL           = 24 * time.Hour
	idempotencyPurgeInterval = time.Hour
	txMaxRetries             = 3
)

// Dependencies are the handlers and middleware mounted by RegisterRoutes.
// Webhooks is only set in the local stage.
type Dependencies struct {
	Health      *handlers.HealthHandler
	Refunds     *handlers.RefundHandler
	Policies    *handlers.PolicyHandler
	Tickets     *handlers.TicketHandler
	Webhooks    *handlers.WebhookHandler
	Auth        gin.HandlerFunc
	RateLimiter *middleware.RateLimiter
	Idempotency *idempotency.Guard
	Metrics     http.Handler
	Development bool
}

var (
	deps Dependencies

	dbPool           *pgxpool.Pool
	idempotencyStore *idempotency.Store
	authenticator    *middleware.Authenticator
)

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitializeHandlers loads configuration and builds every service the API
// routes need. Configuration errors are fatal.
func InitializeHandlers() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := helpers.ResolveDatabaseDSN(ctx, stage, secretsClient)
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}

	stripeKey, err := secretsClient.GetSecretString(ctx, "STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY")
	if err != nil {
		logger.Fatal("Failed to get Stripe secret key", zap.Error(err))
	}

	jwtSecret, err := secretsClient.GetSecretString(ctx, "SUPABASE_JWT_SECRET_ARN", "SUPABASE_JWT_SECRET")
	if err != nil {
		logger.Warn("Supabase JWT secret not configured, only JWKS tokens will be accepted", zap.Error(err))
	}

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Warn("Failed to get Resend API Key. Email notifications will be disabled.", zap.Error(err))
		resendAPIKey = ""
	}

	// --- Database Pool Initialization ---
	dbPool, err = helpers.NewPool(ctx, dsn, helpers.APIPoolSize)
	if err != nil {
		logger.Fatal("Failed to initialize database pool", zap.Error(err))
	}
	queries := db.New(dbPool)
	txRunner := helpers.NewPoolTxRunner(dbPool, txMaxRetries)

	// --- Clients ---
	payments, err := stripeclient.NewRefundProvider(stripeKey, logger.Log)
	if err != nil {
		logger.Fatal("Failed to create Stripe refund provider", zap.Error(err))
	}

	var emailService interfaces.EmailService
	if resendAPIKey != "" {
		emailService = services.NewEmailService(resendAPIKey,
			getEnvWithDefault("EMAIL_FROM", "tickets@eventbook.app"),
			getEnvWithDefault("EMAIL_FROM_NAME", "Eventbook"),
			logger.ForComponent(logger.Log, logger.ComponentEmail))
	}

	authenticator, err = middleware.NewAuthenticator(middleware.AuthConfig{
		Secret:   jwtSecret,
		JWKSURL:  os.Getenv("SUPABASE_JWKS_URL"),
		Audience: getEnvWithDefault("SUPABASE_JWT_AUDIENCE", "authenticated"),
	})
	if err != nil {
		logger.Fatal("Failed to initialize authenticator", zap.Error(err))
	}

	idempotencyStore, err = idempotency.Open(getEnvWithDefault("IDEMPOTENCY_DB_PATH", defaultIdempotencyDBPath), idempotencyTTL)
	if err != nil {
		logger.Fatal("Failed to open idempotency store", zap.Error(err))
	}
	idempotencyStore.StartPurging(idempotencyPurgeInterval)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	// --- Services ---
	calculator := refund.NewCalculator()
	refundDeps := services.RefundDependencies{
		Queries:    queries,
		TxRunner:   txRunner,
		Calculator: calculator,
		Payments:   payments,
		Email:      emailService,
		Metrics:    recorder,
		Logger:     logger.Log,
	}
	waitlist := services.NewWaitlistService(queries, txRunner, emailService, recorder,
		logger.ForComponent(logger.Log, logger.ComponentWaitlist))

	common := handlers.NewCommonServices(logger.Log)
	fallback, rules := middleware.DefaultRateLimitRules()

	deps = Dependencies{
		Health: handlers.NewHealthHandler(dbPool),
		Refunds: handlers.NewRefundHandler(common,
			services.NewBookingRefundService(refundDeps, waitlist),
			services.NewWithdrawalService(refundDeps, waitlist)),
		Policies:    handlers.NewPolicyHandler(common, services.NewRefundPolicyService(queries, calculator, logger.Log)),
		Tickets:     handlers.NewTicketHandler(common, services.NewTicketService(queries, logger.Log)),
		Auth:        authenticator.RequireAuth(),
		RateLimiter: middleware.NewRateLimiter(fallback, rules...).OnLimited(recorder.RateLimited),
		Idempotency: idempotency.NewGuard(idempotencyStore),
		Metrics:     recorder.Handler(),
		Development: stage != helpers.StageProd,
	}

	// Deployed stages receive webhooks through the webhook-receiver queue.
	if stage == helpers.StageLocal {
		webhookSecret, err := secretsClient.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")
		if err != nil {
			logger.Warn("Stripe webhook secret not set, local webhook endpoint disabled", zap.Error(err))
		} else {
			verifier, err := stripeclient.NewWebhookVerifier(webhookSecret, logger.Log)
			if err != nil {
				logger.Fatal("Failed to create webhook verifier", zap.Error(err))
			}
			settlement := services.NewRefundSettlementService(queries, txRunner, logger.Log)
			deps.Webhooks = handlers.NewWebhookHandler(common, verifier, settlement)
		}
	}
}

// InitializeRoutes mounts the routes built by InitializeHandlers.
func InitializeRoutes(router *gin.Engine) {
	RegisterRoutes(router, deps)
}

// RegisterRoutes mounts every route on router.
func RegisterRoutes(router *gin.Engine, d Dependencies) {
	configureTrustedProxies(router)
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	if d.Development {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", d.Health.Health)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics))
	}

	if d.Webhooks != nil {
		router.POST("/webhooks/stripe", d.Webhooks.HandleStripeWebhook)
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("/events")
		public.Use(d.RateLimiter.Middleware())
		public.GET("/:event_id/refund-policy", d.Policies.GetRefundPolicy)

		bookings := v1.Group("/bookings")
		bookings.Use(d.Auth, d.RateLimiter.Middleware())
		{
			bookings.POST("/:booking_id/refund", d.Idempotency.Middleware(), d.Refunds.RequestRefund)
			bookings.POST("/:booking_id/participants/:participant_id/withdraw", d.Idempotency.Middleware(), d.Refunds.WithdrawParticipant)
			bookings.GET("/:booking_id/participants/:participant_id/ticket.png", d.Tickets.GetTicketQR)
		}
	}
}

// Shutdown releases the resources opened by InitializeHandlers.
func Shutdown() {
	if deps.RateLimiter != nil {
		deps.RateLimiter.Close()
	}
	if authenticator != nil {
		authenticator.Close()
	}
	if idempotencyStore != nil {
		if err := idempotencyStore.Close(); err != nil {
			logger.Warn("Failed to close idempotency store", zap.Error(err))
		}
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

func splitEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// configureTrustedProxies limits which peers may set X-Forwarded-For. With
// TRUSTED_PROXIES unset no peer is trusted and the socket address is used.
func configureTrustedProxies(router *gin.Engine) {
	proxies := splitEnvList("TRUSTED_PROXIES", nil)
	if err := router.SetTrustedProxies(proxies); err != nil {
		logger.Warn("Invalid TRUSTED_PROXIES, trusting no proxy", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitEnvList("CORS_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept",
		constants.AuthorizationHeader,
		constants.CorrelationIDHeader,
		constants.IdempotencyKeyHeader,
	}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		constants.CorrelationIDHeader,
		constants.IdempotentReplayHeader,
	}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"
	return cors.New(corsConfig)
}
