package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eventbook/eventbook-api/internal/refund"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var clock = time.Now

func newQuoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote the refund for an amount at a point in time",
		Example: `  refundctl quote --policy policy.toml --amount 200 --at 2024-06-15T12:00:00Z
  refundctl quote -p policy.json --amount 49.99 --event-start 2024-07-01T18:00:00Z --json`,
		Args: cobra.NoArgs,
		RunE: runQuote,
	}
	cmd.Flags().String("amount", "", "Original amount in currency units (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().String("at", "", "Reference time (RFC3339); defaults to now")
	cmd.Flags().Bool("json", false, "Print the outcome as JSON")
	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	policy, eventStart, err := loadPolicy(cmd)
	if err != nil {
		return err
	}
	at, err := referenceTime(cmd, clock)
	if err != nil {
		return err
	}

	rawAmount, _ := cmd.Flags().GetString("amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid --amount %q", rawAmount)
	}

	outcome, err := refund.NewCalculator().Resolve(policy.Timeline, at, amount, eventStart)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	fmt.Fprintf(out, "Refund:     %s (%s%%)\n", outcome.RefundAmount.StringFixed(2), outcome.RefundPercentage.String())
	fmt.Fprintf(out, "Rule:       #%d %s\n", outcome.MatchedRuleIndex, describeRule(outcome.Rule))
	if outcome.Fallback {
		fmt.Fprintln(out, "Note:       no window matched, last rule applied")
	}
	return nil
}

func describeRule(r refund.Rule) string {
	value := r.Amount.String() + "%"
	if r.Kind == refund.KindFixed {
		value = r.Amount.StringFixed(2) + " fixed"
	}
	if r.Description != nil && *r.Description != "" {
		return fmt.Sprintf("%s (%s)", value, *r.Description)
	}
	return value
}
