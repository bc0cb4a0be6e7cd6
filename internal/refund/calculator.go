package refund

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	epoch   = time.Unix(0, 0).UTC()
)

// Calculator resolves refund timelines. It holds no state and is safe for
// concurrent use.
type Calculator struct{}

// NewCalculator creates a new refund calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Resolve picks the rule that applies at referenceTime and computes the
// refund for originalAmount.
//
// Rules are scanned in list order and the first whose [From, To] window
// contains referenceTime wins. A nil From means the Unix epoch and a nil To
// means eventStartTime. If no window matches, the last rule applies.
// Amounts are rounded half up to cents.
func (c *Calculator) Resolve(timeline Timeline, referenceTime time.Time, originalAmount decimal.Decimal, eventStartTime time.Time) (*Outcome, error) {
	if originalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: original amount %s is negative", ErrInvalidInput, originalAmount)
	}
	if len(timeline) == 0 {
		return nil, ErrNoPolicyConfigured
	}
	if err := timeline.Validate(); err != nil {
		return nil, err
	}

	index, fallback := c.match(timeline, referenceTime, eventStartTime)
	rule := timeline[index]

	outcome := &Outcome{
		MatchedRuleIndex: index,
		Rule:             rule,
		Fallback:         fallback,
	}

	switch rule.Kind {
	case KindPercentage:
		outcome.RefundAmount = originalAmount.Mul(rule.Amount).Div(hundred).Round(2)
		outcome.RefundPercentage = rule.Amount
	case KindFixed:
		outcome.RefundAmount = decimal.Min(rule.Amount, originalAmount).Round(2)
		if originalAmount.IsZero() {
			outcome.RefundPercentage = decimal.Zero
		} else {
			outcome.RefundPercentage = outcome.RefundAmount.Div(originalAmount).Mul(hundred).Round(2)
		}
	}

	return outcome, nil
}

// ActiveRuleIndex returns the index of the rule that applies at
// referenceTime and whether it was reached by fallback.
func (c *Calculator) ActiveRuleIndex(timeline Timeline, referenceTime, eventStartTime time.Time) (int, bool, error) {
	if len(timeline) == 0 {
		return 0, false, ErrNoPolicyConfigured
	}
	index, fallback := c.match(timeline, referenceTime, eventStartTime)
	return index, fallback, nil
}

func (c *Calculator) match(timeline Timeline, referenceTime, eventStartTime time.Time) (int, bool) {
	for i, rule := range timeline {
		lower, upper := rule.Bounds(eventStartTime)
		if !referenceTime.Before(lower) && !referenceTime.After(upper) {
			return i, false
		}
	}
	return len(timeline) - 1, true
}

// Bounds returns the effective inclusive window of the rule.
func (r Rule) Bounds(eventStartTime time.Time) (time.Time, time.Time) {
	lower := epoch
	if r.From != nil {
		lower = *r.From
	}
	upper := eventStartTime
	if r.To != nil {
		upper = *r.To
	}
	return lower, upper
}

// Validate checks a single rule.
func (r Rule) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, r.Kind)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: rule amount %s is negative", ErrInvalidInput, r.Amount)
	}
	if r.Kind == KindPercentage && r.Amount.GreaterThan(hundred) {
		return fmt.Errorf("%w: percentage %s exceeds 100", ErrInvalidInput, r.Amount)
	}
	return nil
}

// Validate checks every rule of the timeline. An empty timeline is valid
// here; Resolve reports it as ErrNoPolicyConfigured.
func (t Timeline) Validate() error {
	for i, rule := range t {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}
