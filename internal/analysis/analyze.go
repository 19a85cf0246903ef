package analysis

import (
	"context"
	"fmt"
	"strings"

	"smart-notes/pkg/gemini"
	"smart-notes/pkg/metrics"
)

// Analyze validates input, calls the completion service exactly once and
// parses its reply.
func (uc *implUseCase) Analyze(ctx context.Context, input AnalyzeInput) (Result, error) {
	if strings.TrimSpace(input.Content) == "" || strings.TrimSpace(input.Credential) == "" {
		return Result{}, ErrInvalidInput
	}

	prompt := gemini.BuildNoteAnalysisPrompt(input.Content)

	text, err := uc.completer.Complete(ctx, prompt, input.Credential)
	if err != nil {
		return uc.degrade(ctx, input.Content, fmt.Errorf("%w: %w", ErrServiceFailure, err))
	}
	if strings.TrimSpace(text) == "" {
		return uc.degrade(ctx, input.Content, fmt.Errorf("%w: %w", ErrServiceFailure, ErrEmptyResponse))
	}

	fields, err := ParseResponse(text)
	if err != nil {
		uc.l.Debugf(ctx, "Analyze: unparseable reply: %q", text)
		return uc.degrade(ctx, input.Content, err)
	}

	result := Result{
		Summary:    Truncate(fields.Summary, MaxSummaryLength),
		Tags:       fields.Tags,
		Categories: []string{},
		Venue:      optional(fields.Venue),
		Author:     optional(fields.Author),
	}

	if due, ok := uc.dates.Resolve(fields.DateTime, uc.clock.Now()); ok {
		result.DueDate = &due
	} else if fields.DateTime != "" {
		uc.l.Infof(ctx, "Analyze: could not resolve date %q, note has no due date", fields.DateTime)
	}

	metrics.AnalysisTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	uc.l.Infof(ctx, "Analyze: summary=%q tags=%d due=%t", result.Summary, len(result.Tags), result.DueDate != nil)
	return result, nil
}

func (uc *implUseCase) degrade(ctx context.Context, content string, err error) (Result, error) {
	metrics.AnalysisTotal.WithLabelValues(metrics.OutcomeDegraded).Inc()
	uc.l.Warnf(ctx, "Analyze: falling back to degraded analysis: %v", err)
	return Fallback(content), err
}

// Fallback is the analysis used when the service cannot be used: the first
// MaxSummaryLength characters of the content and the default tag.
func Fallback(content string) Result {
	return Result{
		Summary:    Truncate(content, MaxSummaryLength),
		Tags:       []string{DefaultTag},
		Categories: []string{},
	}
}

// Truncate cuts s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
