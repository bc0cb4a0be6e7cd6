package responses

import "time"

// RefundResponse is returned after a booking refund is issued
type RefundResponse struct {
	BookingID         string   `json:"booking_id"`
	RefundID          string   `json:"refund_id"`
	Status            string   `json:"status"`
	RefundAmount      string   `json:"refund_amount"`
	RefundAmountCents int64    `json:"refund_amount_cents"`
	RefundPercentage  string   `json:"refund_percentage"`
	Currency          string   `json:"currency"`
	ProviderRefundID  string   `json:"provider_refund_id,omitempty"`
	RuleDescription   *string  `json:"rule_description,omitempty"`
	WithdrawnIDs      []string `json:"withdrawn_participant_ids,omitempty"`
	PromotedIDs       []string `json:"promoted_participant_ids,omitempty"`
}

// WithdrawalResponse is returned after a participant is withdrawn
type WithdrawalResponse struct {
	BookingID         string   `json:"booking_id"`
	ParticipantID     string   `json:"participant_id"`
	Status            string   `json:"status"`
	RefundID          string   `json:"refund_id,omitempty"`
	RefundAmount      string   `json:"refund_amount"`
	RefundAmountCents int64    `json:"refund_amount_cents"`
	RefundPercentage  string   `json:"refund_percentage"`
	PromotedIDs       []string `json:"promoted_participant_ids,omitempty"`
}

// RefundRuleResponse is one row of a rendered refund policy
type RefundRuleResponse struct {
	Index       int        `json:"index"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	EffectiveTo time.Time  `json:"effective_to"`
	Type        string     `json:"type"`
	Amount      string     `json:"amount"`
	Description *string    `json:"description,omitempty"`
	Active      bool       `json:"active"`
}

// RefundPolicyResponse renders an event's refund timeline with a live quote
type RefundPolicyResponse struct {
	EventID          string               `json:"event_id"`
	EventStartsAt    time.Time            `json:"event_starts_at"`
	RefundsEnabled   bool                 `json:"refunds_enabled"`
	Rules            []RefundRuleResponse `json:"rules"`
	QuotedAmount     string               `json:"quoted_amount"`
	RefundAmount     string               `json:"refund_amount"`
	RefundPercentage string               `json:"refund_percentage"`
	Fallback         bool                 `json:"fallback"`
}
