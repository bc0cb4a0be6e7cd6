package handlers

import (
	"net/http"
	"strconv"

	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/gin-gonic/gin"
)

// TicketHandler serves participant ticket QR codes
type TicketHandler struct {
	common  *CommonServices
	tickets interfaces.TicketService
}

func NewTicketHandler(common *CommonServices, tickets interfaces.TicketService) *TicketHandler {
	return &TicketHandler{common: common, tickets: tickets}
}

// GetTicketQR godoc
// @Summary Get a participant's ticket
// @Description Returns the participant's ticket as a PNG QR code
// @Tags bookings
// @Produce png
// @Param booking_id path string true "Booking ID"
// @Param participant_id path string true "Participant ID"
// @Param size query int false "Image size in pixels (128-1024)"
// @Success 200 {file} binary
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{booking_id}/participants/{participant_id}/ticket.png [get]
func (h *TicketHandler) GetTicketQR(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "booking_id")
	if !ok {
		return
	}
	participantID, ok := parseUUIDParam(c, "participant_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	size := 0
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid size", err)
			return
		}
		size = parsed
	}

	png, err := h.tickets.QRCode(c.Request.Context(), params.TicketQRParams{
		BookingID:     bookingID,
		ParticipantID: participantID,
		UserID:        userID,
		Size:          size,
	})
	if err != nil {
		h.common.HandleServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, "image/png", png)
}
