package analysis

import "context"

// UseCase turns raw note text into structured metadata.
type UseCase interface {
	// Analyze calls the completion service once and parses its reply.
	// On ErrInvalidInput nothing is called and the Result is empty. On any
	// other error the returned Result is the degraded Fallback for the content.
	Analyze(ctx context.Context, input AnalyzeInput) (Result, error)
}

// Completer is the completion-service boundary: prompt in, text out.
type Completer interface {
	Complete(ctx context.Context, prompt, credential string) (string, error)
}
