package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"smart-notes/pkg/gcalendar"
)

func newCalendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar access and save the token",
		Long: `Run once to authorize Google Calendar with OAuth installed-app
credentials. The token is saved next to the credentials file, where the
service looks for it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) > 0 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			tokenPath := gcalendar.TokenPath(credsPath)
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nToken saved to %s. Restart the service to enable calendar sync.\n", tokenPath)
			return nil
		},
	}
}
