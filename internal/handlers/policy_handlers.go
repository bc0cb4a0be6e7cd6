package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/api/responses"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PolicyHandler renders event refund policies
type PolicyHandler struct {
	common   *CommonServices
	policies interfaces.RefundPolicyService
}

func NewPolicyHandler(common *CommonServices, policies interfaces.RefundPolicyService) *PolicyHandler {
	return &PolicyHandler{common: common, policies: policies}
}

// GetRefundPolicy godoc
// @Summary Get an event's refund policy
// @Description Returns the refund timeline of an event with the rule active at the given time and a quote for the given amount
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Param amount_cents query int false "Amount to quote in cents; defaults to the cheapest section price"
// @Param section_id query string false "Quote this section's price when amount_cents is absent"
// @Param at query string false "Reference time (RFC3339); defaults to now"
// @Success 200 {object} responses.RefundPolicyResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{event_id}/refund-policy [get]
func (h *PolicyHandler) GetRefundPolicy(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	p := params.RefundPolicyPreviewParams{EventID: eventID}
	if raw := c.Query("amount_cents"); raw != "" {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid amount_cents", err)
			return
		}
		p.AmountCents = &amount
	}
	if raw := c.Query("section_id"); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid section_id", err)
			return
		}
		p.SectionID = &sectionID
	}
	if raw := c.Query("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid at, expected RFC3339", err)
			return
		}
		p.Now = at
	}

	view, err := h.policies.Preview(c.Request.Context(), p)
	if err != nil {
		h.common.HandleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toRefundPolicyResponse(view))
}

func toRefundPolicyResponse(v *business.RefundPolicyView) responses.RefundPolicyResponse {
	startsAt := v.Event.StartsAt.Time
	resp := responses.RefundPolicyResponse{
		EventID:          v.Event.ID.String(),
		EventStartsAt:    startsAt,
		RefundsEnabled:   v.Event.RefundsEnabled,
		Rules:            make([]responses.RefundRuleResponse, 0, len(v.Timeline)),
		QuotedAmount:     v.QuotedAmount.StringFixed(2),
		RefundAmount:     "0.00",
		RefundPercentage: "0",
	}
	if v.Outcome != nil {
		resp.RefundAmount = v.Outcome.RefundAmount.StringFixed(2)
		resp.RefundPercentage = v.Outcome.RefundPercentage.String()
		resp.Fallback = v.Outcome.Fallback
	}

	for i, rule := range v.Timeline {
		_, upper := rule.Bounds(startsAt)
		resp.Rules = append(resp.Rules, responses.RefundRuleResponse{
			Index:       i,
			From:        rule.From,
			To:          rule.To,
			EffectiveTo: upper,
			Type:        string(rule.Kind),
			Amount:      rule.Amount.String(),
			Description: rule.Description,
			Active:      v.Outcome != nil && v.Outcome.MatchedRuleIndex == i,
		})
	}
	return resp
}
