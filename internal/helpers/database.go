package helpers

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SecretSource resolves secrets by ARN env var with a plain env fallback.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error
}

// RDSSecret is the credential document stored for the RDS instance.
type RDSSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResolveDatabaseDSN builds the Postgres DSN. Deployed stages assemble it
// from the RDS secret plus DB_HOST, DB_NAME and DB_SSLMODE; local reads
// DATABASE_URL.
func ResolveDatabaseDSN(ctx context.Context, stage string, secrets SecretSource) (string, error) {
	if stage == StageLocal {
		dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", fmt.Errorf("failed to get DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	dbEndpoint := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbEndpoint == "" || dbName == "" {
		return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	if dbSSLMode == "" {
		dbSSLMode = "require"
	}

	var secret RDSSecret
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secret); err != nil {
		return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
	}
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password not found in RDS secret")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		dbEndpoint, dbName, dbSSLMode), nil
}

// PoolSize bounds a pgx pool.
type PoolSize struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

var (
	// APIPoolSize serves the HTTP API.
	APIPoolSize = PoolSize{MaxConns: 20, MinConns: 5, MaxConnLifetime: 30 * time.Minute, MaxConnIdleTime: 15 * time.Minute}
	// WorkerPoolSize serves single-purpose Lambdas.
	WorkerPoolSize = PoolSize{MaxConns: 5, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: 15 * time.Minute}
)

// NewPool parses dsn and opens a pool with the given size.
func NewPool(ctx context.Context, dsn string, size PoolSize) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}
	poolConfig.MaxConns = size.MaxConns
	poolConfig.MinConns = size.MinConns
	poolConfig.MaxConnLifetime = size.MaxConnLifetime
	poolConfig.MaxConnIdleTime = size.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}
