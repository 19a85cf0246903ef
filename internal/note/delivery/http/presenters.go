package http

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
	"smart-notes/internal/note"
)

// HeaderCredential lets a client bring its own completion-service key.
const HeaderCredential = "X-Gemini-Api-Key"

const maxContentLength = 10000

// --- Request DTOs ---

type createReq struct {
	Content    string `json:"content"`
	Credential string `json:"-"` // from HeaderCredential
}

func (r createReq) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.By(notBlank),
			validation.RuneLength(0, maxContentLength),
		),
	)
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

func (r createReq) toInput() note.CreateInput {
	return note.CreateInput{Content: r.Content, Credential: r.Credential}
}

type listReq struct {
	Query string `form:"q"`
}

func (r listReq) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.RuneLength(0, 200)),
	)
}

func (r listReq) toInput() note.ListInput {
	return note.ListInput{Query: strings.TrimSpace(r.Query)}
}

// --- Response DTOs ---

type noteResp struct {
	ID           string     `json:"id"`
	Content      string     `json:"content"`
	Timestamp    time.Time  `json:"timestamp"`
	Tags         []string   `json:"tags"`
	Summary      string     `json:"summary"`
	Categories   []string   `json:"categories"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Venue        *string    `json:"venue,omitempty"`
	Author       *string    `json:"author,omitempty"`
	Completed    bool       `json:"completed"`
	CalendarLink string     `json:"calendar_link,omitempty"`
}

func newNoteResp(n model.Note) noteResp {
	categories := n.Categories
	if categories == nil {
		categories = []string{}
	}
	return noteResp{
		ID:           n.ID,
		Content:      n.Content,
		Timestamp:    n.Timestamp,
		Tags:         n.Tags,
		Summary:      n.Summary,
		Categories:   categories,
		DueDate:      n.DueDate,
		Venue:        n.Venue,
		Author:       n.Author,
		Completed:    n.Completed,
		CalendarLink: n.CalendarLink,
	}
}

type createResp struct {
	Note      noteResp         `json:"note"`
	Countdown *countdown.State `json:"countdown,omitempty"`
	Warning   string           `json:"warning,omitempty"`
}

func (h *handler) newCreateResp(out note.CreateOutput) createResp {
	return createResp{Note: newNoteResp(out.Note), Countdown: out.Countdown, Warning: out.Warning}
}

type listResp struct {
	Notes []noteResp `json:"notes"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listResp{Notes: notes, Total: out.Total}
}

type detailResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newDetailResp(n model.Note) detailResp {
	return detailResp{Note: newNoteResp(n)}
}
