package handlers

import (
	"errors"
	"net/http"

	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/middleware"
	"github.com/eventbook/eventbook-api/internal/refund"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CommonServices holds dependencies shared by every handler
type CommonServices struct {
	logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(l *zap.Logger) *CommonServices {
	if l == nil {
		l = logger.Log
	}
	return &CommonServices{logger: logger.ForComponent(l, logger.ComponentAPI)}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

type errorMapping struct {
	target error
	status int
}

var serviceErrorStatus = []errorMapping{
	{services.ErrBookingNotFound, http.StatusNotFound},
	{services.ErrParticipantNotFound, http.StatusNotFound},
	{services.ErrEventNotFound, http.StatusNotFound},
	{services.ErrSectionNotFound, http.StatusNotFound},
	{services.ErrNotOwner, http.StatusForbidden},
	{services.ErrNotRefundable, http.StatusConflict},
	{services.ErrEventStarted, http.StatusConflict},
	{services.ErrTicketInactive, http.StatusConflict},
	{services.ErrNoRefundAvailable, http.StatusUnprocessableEntity},
	{refund.ErrInvalidInput, http.StatusBadRequest},
	{refund.ErrNoPolicyConfigured, http.StatusUnprocessableEntity},
	{services.ErrPaymentProvider, http.StatusBadGateway},
}

// statusForError maps a service error to an HTTP status. Unknown errors
// are internal.
func statusForError(err error) int {
	for _, m := range serviceErrorStatus {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// HandleServiceError responds with the status mapped from err. Client
// errors carry the error text, everything else a generic message.
func (s *CommonServices) HandleServiceError(c *gin.Context, err error) {
	status := statusForError(err)
	switch {
	case status == http.StatusForbidden:
		sendError(c, status, "You do not have access to this booking", err)
	case status == http.StatusBadGateway:
		sendError(c, status, "Payment provider could not process the refund", err)
	case status < http.StatusInternalServerError:
		sendError(c, status, err.Error(), err)
	default:
		sendError(c, status, "Internal server error", err)
	}
}

// sendError logs the error with the request's correlation ID and sends a
// JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	log := logger.Log.With(
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
		zap.Int("status", statusCode),
	)
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err))
	} else {
		log.Debug(message, zap.Error(err))
	}

	c.JSON(statusCode, responses.ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// parseUUIDParam reads a path parameter as a UUID, responding 400 when it
// is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name+" format", err)
		return uuid.Nil, false
	}
	return id, true
}

// requireUserID returns the authenticated caller, responding 401 when the
// auth middleware did not run.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return uuid.Nil, false
	}
	return userID, true
}
