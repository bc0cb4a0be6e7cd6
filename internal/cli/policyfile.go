package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eventbook/eventbook-api/internal/refund"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// PolicyFile is a refund timeline stored on disk. TOML files look like:
//
//	event_start = 2024-07-01T18:00:00Z
//
//	[[rule]]
//	to = 2024-06-01T00:00:00Z
//	type = "percentage"
//	amount = 100
//	description = "Full refund"
//
// Files ending in .json hold the timeline as stored on the event row.
type PolicyFile struct {
	EventStart *time.Time
	Timeline   refund.Timeline
}

type tomlPolicy struct {
	EventStart *time.Time `toml:"event_start"`
	Rules      []tomlRule `toml:"rule"`
}

type tomlRule struct {
	From        *time.Time  `toml:"from"`
	To          *time.Time  `toml:"to"`
	Type        string      `toml:"type"`
	Amount      interface{} `toml:"amount"`
	Description string      `toml:"description"`
}

// LoadPolicyFile reads and validates a policy file.
func LoadPolicyFile(path string) (*PolicyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		timeline, err := refund.ParseTimeline(raw)
		if err != nil {
			return nil, err
		}
		return &PolicyFile{Timeline: timeline}, nil
	}
	return ParsePolicyTOML(string(raw))
}

// ParsePolicyTOML decodes a TOML policy document.
func ParsePolicyTOML(doc string) (*PolicyFile, error) {
	var parsed tomlPolicy
	md, err := toml.Decode(doc, &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse policy: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown policy key %q", undecoded[0].String())
	}

	timeline := make(refund.Timeline, 0, len(parsed.Rules))
	for i, r := range parsed.Rules {
		amount, err := tomlAmount(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rule := refund.Rule{
			From:   r.From,
			To:     r.To,
			Kind:   refund.Kind(r.Type),
			Amount: amount,
		}
		if r.Description != "" {
			description := r.Description
			rule.Description = &description
		}
		timeline = append(timeline, rule)
	}
	if err := timeline.Validate(); err != nil {
		return nil, err
	}

	return &PolicyFile{EventStart: parsed.EventStart, Timeline: timeline}, nil
}

// tomlAmount accepts integers, floats and decimal strings.
func tomlAmount(v interface{}) (decimal.Decimal, error) {
	switch a := v.(type) {
	case int64:
		return decimal.NewFromInt(a), nil
	case float64:
		return decimal.NewFromFloat(a), nil
	case string:
		d, err := decimal.NewFromString(a)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", refund.ErrInvalidInput, a)
		}
		return d, nil
	case nil:
		return decimal.Zero, fmt.Errorf("%w: amount is required", refund.ErrInvalidInput)
	default:
		return decimal.Zero, fmt.Errorf("%w: amount has unsupported type %T", refund.ErrInvalidInput, v)
	}
}
