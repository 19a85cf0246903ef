package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-notes/pkg/clock"
	"smart-notes/pkg/datemath"
)

func newResolveDateCmd() *cobra.Command {
	var (
		tz  string
		now string
	)

	cmd := &cobra.Command{
		Use:   "resolve-date <expression>",
		Short: "Resolve a date expression to an absolute time",
		Long: `Resolve a date expression the way note analysis does. Prints the
RFC3339 time, or "none" when the expression has no usable date.`,
		Example: `  notectl resolve-date "tomorrow at 6pm" --tz Asia/Kolkata
  notectl resolve-date 2024-01-02T18:00:00Z`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zones, err := clock.NewZoneProvider(tz)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", tz, err)
			}
			ref, err := parseNow(now)
			if err != nil {
				return err
			}

			t, ok := datemath.NewResolver(zones).Resolve(strings.Join(args, " "), ref)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), datemath.NoneValue)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&tz, "tz", "", `IANA timezone, "" for the host zone, "none" for no zone`)
	cmd.Flags().StringVar(&now, "now", "", "Reference time in RFC3339 (defaults to the current time)")
	return cmd
}

func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", s, err)
	}
	return t, nil
}
