package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smart-notes/internal/countdown"
)

func newCountdownCmd() *cobra.Command {
	var (
		now     string
		lead    time.Duration
		trigger string
	)

	cmd := &cobra.Command{
		Use:   "countdown <due RFC3339>",
		Short: "Print the countdown state of a due time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("invalid due time %q: %w", args[0], err)
			}
			ref, err := parseNow(now)
			if err != nil {
				return err
			}

			policy := countdown.DefaultPolicy()
			policy.LeadTime = lead
			policy.Trigger = countdown.Trigger(trigger)

			state, fire := countdown.Evaluate(due, ref, false, policy)
			out := struct {
				countdown.State
				Fire bool `json:"fire"`
			}{State: state, Fire: fire}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&now, "now", "", "Reference time in RFC3339 (defaults to the current time)")
	cmd.Flags().DurationVar(&lead, "lead", countdown.DefaultLeadTime, "Alert lead time")
	cmd.Flags().StringVar(&trigger, "trigger", string(countdown.TriggerRange), "Alert trigger: range or exact")
	return cmd
}
