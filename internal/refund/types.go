package refund

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind selects how a rule's Amount is interpreted.
type Kind string

const (
	// KindPercentage refunds Amount percent of the original amount.
	KindPercentage Kind = "percentage"
	// KindFixed refunds Amount in currency units, capped at the original amount.
	KindFixed Kind = "fixed"
)

// Valid reports whether k is a known rule kind.
func (k Kind) Valid() bool {
	return k == KindPercentage || k == KindFixed
}

// Rule is one window of a refund timeline. Both bounds are inclusive.
// A nil From is open at the beginning of time, a nil To is open up to the
// event start.
type Rule struct {
	From        *time.Time      `json:"from,omitempty"`
	To          *time.Time      `json:"to,omitempty"`
	Kind        Kind            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

// Timeline is an ordered list of rules. Order is significant: the first
// matching rule wins and the last rule is the fallback.
type Timeline []Rule

// Outcome is the result of resolving a timeline.
type Outcome struct {
	RefundAmount     decimal.Decimal `json:"refund_amount"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"`
	MatchedRuleIndex int             `json:"matched_rule_index"`
	Rule             Rule            `json:"rule"`
	// Fallback is set when no window contained the reference time and the
	// last rule was applied.
	Fallback bool `json:"fallback"`
}

// Available reports whether the outcome grants a positive refund.
func (o *Outcome) Available() bool {
	return o != nil && o.RefundAmount.IsPositive()
}
