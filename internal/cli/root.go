package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the refundctl command tree.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "refundctl",
		Short: "Inspect and quote event refund policies",
		Long: `refundctl evaluates refund policies offline with the same calculator the
booking API uses. Policies are read from TOML or JSON files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("policy", "p", "", "Path to the policy file (.toml or .json)")
	_ = root.MarkPersistentFlagRequired("policy")
	root.PersistentFlags().String("event-start", "", "Event start time (RFC3339); overrides event_start in the file")

	root.AddCommand(newQuoteCommand())
	root.AddCommand(newPolicyCommand())
	return root
}

// loadPolicy reads the --policy file and resolves the event start.
func loadPolicy(cmd *cobra.Command) (*PolicyFile, time.Time, error) {
	path, _ := cmd.Flags().GetString("policy")
	policy, err := LoadPolicyFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	raw, _ := cmd.Flags().GetString("event-start")
	if raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("invalid --event-start: %w", err)
		}
		return policy, start, nil
	}
	if policy.EventStart == nil {
		return nil, time.Time{}, fmt.Errorf("event start is required: set event_start in the policy or pass --event-start")
	}
	return policy, *policy.EventStart, nil
}

// referenceTime parses --at, defaulting to now.
func referenceTime(cmd *cobra.Command, now func() time.Time) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("at")
	if raw == "" {
		return now(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at: %w", err)
	}
	return at, nil
}
