package repository

// ListNotesOptions holds filter and pagination parameters for listing notes.
type ListNotesOptions struct {
	// Query is a case-insensitive substring matched against content, tags,
	// summary, venue and author.
	Query string
	// Pending restricts the listing to notes that are not completed and
	// carry a due date.
	Pending bool
	Limit   int
	Offset  int
}

// UpdateNoteOptions holds the mutable fields of a note. Nil fields are left
// unchanged.
type UpdateNoteOptions struct {
	ID              string
	Completed       *bool
	CalendarEventID *string
	CalendarLink    *string
}
