package gemini

import "fmt"

// NoteAnalysisPromptTemplate asks the model for the five-line metadata block.
// %s is the raw note content.
const NoteAnalysisPromptTemplate = `Analyze this note and provide:
1. A one-line summary (max 50 characters)
2. Relevant tags (max 6)
3. If this contains any meeting or task with time, extract the exact date and time (assume timezone is IST/GMT+5:30)
4. If this is about a meeting or event, extract the venue
5. Try to identify who created or is responsible for this event/note
Note content: "%s"

Format the response exactly like this:
Summary: [one line summary]
Tags: [tag1, tag2, tag3, tag4, tag5, tag6]
DateTime: [ISO date string or "none" if no date/time found]
Venue: [venue or "none" if not found]
Author: [author/organizer or "Unknown"]`

// BuildNoteAnalysisPrompt builds the full prompt for note analysis.
func BuildNoteAnalysisPrompt(content string) string {
	return fmt.Sprintf(NoteAnalysisPromptTemplate, content)
}
