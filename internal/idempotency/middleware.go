package idempotency

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/eventbook/eventbook-api/internal/constants"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/middleware"
	"github.com/eventbook/eventbook-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxKeyLength = 255

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Guard replays stored responses for repeated Idempotency-Key values.
type Guard struct {
	store    *Store
	inFlight sync.Map
	logger   *zap.Logger
}

func NewGuard(store *Store) *Guard {
	return &Guard{
		store:  store,
		logger: logger.ForComponent(logger.Log, logger.ComponentMiddleware),
	}
}

func scopedKey(c *gin.Context, key string) string {
	owner := "anonymous"
	if userID, ok := middleware.GetUserID(c); ok {
		owner = userID.String()
	}
	return fmt.Sprintf("%s|%s|%s|%s", owner, c.Request.Method, c.Request.URL.Path, key)
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, responses.ErrorResponse{
		Error:         msg,
		CorrelationID: middleware.GetCorrelationID(c),
	})
}

// Middleware passes requests without the header straight through. Server
// errors are not stored so the client can retry them.
func (g *Guard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(constants.IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxKeyLength {
			abort(c, http.StatusBadRequest, "Idempotency-Key is too long")
			return
		}

		scoped := scopedKey(c, key)
		record, err := g.store.Get(scoped)
		switch {
		case err == nil:
			g.logger.Debug("Replaying idempotent response",
				zap.String("correlation_id", middleware.GetCorrelationID(c)),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header(constants.IdempotentReplayHeader, "true")
			c.Data(record.Status, record.ContentType, record.Body)
			c.Abort()
			return
		case !errors.Is(err, ErrNotFound):
			g.logger.Error("Failed to read idempotency record", zap.Error(err))
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if _, busy := g.inFlight.LoadOrStore(scoped, struct{}{}); busy {
			abort(c, http.StatusConflict, "A request with this Idempotency-Key is already in progress")
			return
		}
		defer g.inFlight.Delete(scoped)

		writer := captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		if _, _, err := g.store.Save(scoped, Record{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}); err != nil {
			g.logger.Error("Failed to store idempotency record", zap.Error(err))
		}
	}
}
