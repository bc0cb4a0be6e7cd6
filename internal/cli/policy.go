package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/eventbook/eventbook-api/internal/refund"

	"github.com/spf13/cobra"
)

func newPolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Print the rule table of a policy",
		Long: `Print every rule with its resolved window. The rule that applies at --at
(default now) is marked with an asterisk.

With --json the timeline is printed as the JSON document stored in
events.refund_policy instead.`,
		Args: cobra.NoArgs,
		RunE: runPolicy,
	}
	cmd.Flags().String("at", "", "Reference time (RFC3339); defaults to now")
	cmd.Flags().Bool("json", false, "Print the timeline as a stored policy document")
	return cmd
}

func formatBound(t time.Time) string {
	if t.IsZero() || t.Equal(time.Unix(0, 0)) {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func runPolicy(cmd *cobra.Command, _ []string) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		path, _ := cmd.Flags().GetString("policy")
		policy, err := LoadPolicyFile(path)
		if err != nil {
			return err
		}
		doc, err := refund.MarshalTimeline(policy.Timeline)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return err
	}

	policy, eventStart, err := loadPolicy(cmd)
	if err != nil {
		return err
	}
	at, err := referenceTime(cmd, clock)
	if err != nil {
		return err
	}

	active, fallback, err := refund.NewCalculator().ActiveRuleIndex(policy.Timeline, at, eventStart)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\t#\tFROM\tUNTIL\tREFUND")
	for i, rule := range policy.Timeline {
		marker := ""
		if i == active {
			marker = "*"
		}
		from, until := rule.Bounds(eventStart)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", marker, i, formatBound(from), formatBound(until), describeRule(rule))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if fallback {
		fmt.Fprintln(cmd.OutOrStdout(), "\nNo window contains the reference time; the last rule applies.")
	}
	return nil
}
