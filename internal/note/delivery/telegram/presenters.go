package telegram

import (
	"fmt"
	"strings"

	"smart-notes/internal/model"
	"smart-notes/internal/note"
)

const startText = "👋 Welcome to *Smart Notes*!\n\nSend me any note and I will:\n• summarize and tag it\n• pick out the date, venue and organizer\n• remind you 15 minutes before it starts"

const helpText = "*How to use:*\n\nJust type a note, for example:\n`Design review with Priya tomorrow at 4:30 PM in Room 2`\n\n/list shows your latest notes."

const dueLayout = "Mon, 02 Jan 2006 15:04 MST"

func formatCreated(out note.CreateOutput) string {
	n := out.Note
	var b strings.Builder

	fmt.Fprintf(&b, "📝 %s\n", n.Summary)
	if len(n.Tags) > 0 {
		fmt.Fprintf(&b, "🏷 %s\n", hashTags(n.Tags))
	}
	if n.DueDate != nil {
		fmt.Fprintf(&b, "⏰ %s", n.DueDate.Format(dueLayout))
		if out.Countdown != nil {
			fmt.Fprintf(&b, " (%s)", out.Countdown.DisplayDistance)
		}
		b.WriteString("\n")
	}
	if n.Venue != nil {
		fmt.Fprintf(&b, "📍 %s\n", *n.Venue)
	}
	if n.Author != nil {
		fmt.Fprintf(&b, "👤 %s\n", *n.Author)
	}
	if n.CalendarLink != "" {
		fmt.Fprintf(&b, "📅 %s\n", n.CalendarLink)
	}
	if out.Warning != "" {
		fmt.Fprintf(&b, "\n⚠️ %s\n", out.Warning)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatList(notes []model.Note, limit int) string {
	if len(notes) == 0 {
		return "No notes yet."
	}

	var b strings.Builder
	for i, n := range notes {
		if i == limit {
			fmt.Fprintf(&b, "…and %d more", len(notes)-limit)
			break
		}
		mark := "•"
		if n.Completed {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s %s", mark, n.Summary)
		if n.DueDate != nil {
			fmt.Fprintf(&b, " (%s)", n.DueDate.Format(dueLayout))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func hashTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + strings.ReplaceAll(t, " ", "_")
	}
	return strings.Join(out, " ")
}
