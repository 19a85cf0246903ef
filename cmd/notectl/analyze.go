package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-notes/config"
	"smart-notes/internal/analysis"
	"smart-notes/pkg/clock"
	"smart-notes/pkg/datemath"
	"smart-notes/pkg/gemini"
)

func newAnalyzeCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze a note with Gemini and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if apiKey == "" {
				apiKey = cfg.Gemini.APIKey
			}

			client, err := gemini.New(gemini.Config{
				Model:   cfg.Gemini.Model,
				APIURL:  cfg.Gemini.APIURL,
				Timeout: cfg.Gemini.Timeout,
			})
			if err != nil {
				return err
			}
			zones, err := clock.NewZoneProvider(cfg.Timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
			}

			analyzer := analysis.New(newLogger(), analysis.NewGeminiCompleter(client), datemath.NewResolver(zones), clock.New())
			result, err := analyzer.Analyze(cmd.Context(), analysis.AnalyzeInput{
				Content:    strings.Join(args, " "),
				Credential: apiKey,
			})
			if err != nil && !analysis.IsDegradable(err) {
				return err
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(newAnalyzeOutput(result))
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	return cmd
}

type analyzeOutput struct {
	Summary string     `json:"summary"`
	Tags    []string   `json:"tags"`
	DueDate *time.Time `json:"due_date,omitempty"`
	Venue   *string    `json:"venue,omitempty"`
	Author  *string    `json:"author,omitempty"`
}

func newAnalyzeOutput(r analysis.Result) analyzeOutput {
	return analyzeOutput{
		Summary: r.Summary,
		Tags:    r.Tags,
		DueDate: r.DueDate,
		Venue:   r.Venue,
		Author:  r.Author,
	}
}
