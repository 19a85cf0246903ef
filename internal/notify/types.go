package notify

import "time"

// Notification is a "display alert" event.
type Notification struct {
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Icon    string    `json:"icon"`
	NoteID  string    `json:"note_id"`
	DueDate time.Time `json:"due_date"`
}

// Permission is the host's decision about showing alerts.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission maps config text to a Permission; anything unknown is
// PermissionDefault.
func ParsePermission(s string) Permission {
	switch Permission(s) {
	case PermissionGranted, PermissionDenied:
		return Permission(s)
	}
	return PermissionDefault
}
