package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/eventbook/eventbook-api/internal/helpers"
	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/api/requests"
	"github.com/eventbook/eventbook-api/internal/types/api/responses"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RefundHandler handles booking refunds and participant withdrawals
type RefundHandler struct {
	common      *CommonServices
	refunds     interfaces.BookingRefundService
	withdrawals interfaces.WithdrawalService
	logger      *zap.Logger
}

func NewRefundHandler(
	common *CommonServices,
	refunds interfaces.BookingRefundService,
	withdrawals interfaces.WithdrawalService,
) *RefundHandler {
	return &RefundHandler{
		common:      common,
		refunds:     refunds,
		withdrawals: withdrawals,
		logger:      common.GetLogger(),
	}
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// RequestRefund godoc
// @Summary Refund a booking
// @Description Cancels a paid booking and refunds the amount allowed by the event's refund policy at the time of the request
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body requests.RefundBookingRequest false "Refund reason"
// @Success 200 {object} responses.RefundResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{booking_id}/refund [post]
func (h *RefundHandler) RequestRefund(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "booking_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req requests.RefundBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.refunds.RequestRefund(c.Request.Context(), params.RequestRefundParams{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    req.Reason,
	})
	if err != nil {
		h.common.HandleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toRefundResponse(result))
}

// WithdrawParticipant godoc
// @Summary Withdraw a participant
// @Description Withdraws one participant from a booking, refunds their share per the refund policy and releases the seat to the waitlist
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param participant_id path string true "Participant ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body requests.WithdrawParticipantRequest false "Withdrawal reason"
// @Success 200 {object} responses.WithdrawalResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /bookings/{booking_id}/participants/{participant_id}/withdraw [post]
func (h *RefundHandler) WithdrawParticipant(c *gin.Context) {
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

	var req requests.WithdrawParticipantRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.withdrawals.Withdraw(c.Request.Context(), params.WithdrawParticipantParams{
		BookingID:     bookingID,
		ParticipantID: participantID,
		UserID:        userID,
		Reason:        req.Reason,
	})
	if err != nil {
		h.common.HandleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toWithdrawalResponse(result))
}

func toRefundResponse(r *business.RefundResult) responses.RefundResponse {
	resp := responses.RefundResponse{
		BookingID:         r.Booking.ID.String(),
		RefundID:          r.Refund.ID.String(),
		Status:            r.Booking.Status,
		RefundAmountCents: r.Refund.AmountCents,
		RefundAmount:      helpers.CentsToDecimal(r.Refund.AmountCents).StringFixed(2),
		RefundPercentage:  helpers.NumericToDecimal(r.Refund.Percentage).String(),
		Currency:          r.Booking.Currency,
		ProviderRefundID:  r.Refund.ProviderRefundID.String,
	}
	if r.Outcome != nil {
		resp.RefundPercentage = r.Outcome.RefundPercentage.String()
		resp.RuleDescription = r.Outcome.Rule.Description
	}
	for _, p := range r.Withdrawn {
		resp.WithdrawnIDs = append(resp.WithdrawnIDs, p.ID.String())
	}
	for _, p := range r.Promoted {
		resp.PromotedIDs = append(resp.PromotedIDs, p.ID.String())
	}
	return resp
}

func toWithdrawalResponse(r *business.WithdrawalResult) responses.WithdrawalResponse {
	resp := responses.WithdrawalResponse{
		BookingID:        r.Participant.BookingID.String(),
		ParticipantID:    r.Participant.ID.String(),
		Status:           r.Participant.Status,
		RefundAmount:     "0.00",
		RefundPercentage: "0",
	}
	if r.Refund != nil {
		resp.RefundID = r.Refund.ID.String()
		resp.RefundAmountCents = r.Refund.AmountCents
		resp.RefundAmount = helpers.CentsToDecimal(r.Refund.AmountCents).StringFixed(2)
	}
	if r.Outcome != nil {
		resp.RefundPercentage = r.Outcome.RefundPercentage.String()
	}
	for _, p := range r.Promoted {
		resp.PromotedIDs = append(resp.PromotedIDs, p.ID.String())
	}
	return resp
}
