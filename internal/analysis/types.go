package analysis

import "time"

const (
	// MaxSummaryLength is the hard cap on summary length, in characters.
	MaxSummaryLength = 50
	// MaxTags is the cap on extracted tags.
	MaxTags = 6
	// DefaultTag replaces an empty tag list.
	DefaultTag = "note"
)

// AnalyzeInput is a single analysis request.
type AnalyzeInput struct {
	Content    string
	Credential string
}

// Result is the structured metadata extracted for one note.
type Result struct {
	Summary    string
	Tags       []string
	Categories []string // reserved, always empty
	DueDate    *time.Time
	Venue      *string
	Author     *string
}

// Fields are the labeled values read from a completion reply. Empty strings
// mean absent.
type Fields struct {
	Summary  string
	Tags     []string
	DateTime string
	Venue    string
	Author   string
}
