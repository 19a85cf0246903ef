package gemini

import "context"

// IGemini is a generateContent client. A Request may carry its own API key;
// the key from Config is used otherwise. Implementations are safe for
// concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, filling defaults, and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
