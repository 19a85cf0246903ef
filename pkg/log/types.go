package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or "debug"
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

type contextKey string

const (
	// RequestIDKey is the context key under which delivery layers store a request id.
	RequestIDKey contextKey = "request_id"
	// NoteIDKey is the context key for the note being processed.
	NoteIDKey contextKey = "note_id"
)
