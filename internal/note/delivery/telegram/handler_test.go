package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-notes/internal/countdown"
	"smart-notes/internal/model"
	"smart-notes/internal/note"
	pkgLog "smart-notes/pkg/log"
	pkgTelegram "smart-notes/pkg/telegram"
)

type mockNoteUseCase struct {
	note.UseCase

	createOut note.CreateOutput
	createErr error
	listOut   note.ListOutput
	input     note.CreateInput
	scope     model.Scope
}

func (m *mockNoteUseCase) Create(_ context.Context, sc model.Scope, in note.CreateInput) (note.CreateOutput, error) {
	m.scope = sc
	m.input = in
	return m.createOut, m.createErr
}

func (m *mockNoteUseCase) List(context.Context, model.Scope, note.ListInput) (note.ListOutput, error) {
	return m.listOut, nil
}

// telegramServer records sendMessage payloads.
type telegramServer struct {
	mu   sync.Mutex
	sent []pkgTelegram.SendMessageRequest
}

func (s *telegramServer) texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	for i, m := range s.sent {
		out[i] = m.Text
	}
	return out
}

func newHandler(t *testing.T, uc note.UseCase) (*handler, *telegramServer) {
	t.Helper()
	srv := &telegramServer{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgTelegram.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		srv.mu.Lock()
		srv.sent = append(srv.sent, req)
		srv.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(ts.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return &handler{l: pkgLog.NewNop(), uc: uc, bot: bot}, srv
}

func message(text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		From:      &pkgTelegram.User{ID: 42, FirstName: "Asha"},
		Chat:      &pkgTelegram.Chat{ID: 7, Type: "private"},
		Text:      text,
	}
}

func TestProcessMessage_CreatesNote(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	due := time.Date(2024, 1, 2, 18, 0, 0, 0, ist)
	venue := "Room 4"
	uc := &mockNoteUseCase{createOut: note.CreateOutput{
		Note: model.Note{
			ID:      "n1",
			Summary: "Team sync",
			Tags:    []string{"meeting", "team work"},
			DueDate: &due,
			Venue:   &venue,
		},
		Countdown: &countdown.State{DisplayDistance: "in about 8 hours"},
	}}
	h, srv := newHandler(t, uc)

	require.NoError(t, h.processMessage(context.Background(), message("Team sync tomorrow 6 PM in Room 4")))

	assert.Equal(t, "Team sync tomorrow 6 PM in Room 4", uc.input.Content)
	assert.Equal(t, model.SourceTelegram, uc.scope.Source)
	assert.Equal(t, "telegram_42", uc.scope.UserID)
	assert.Equal(t, []string{
		"📝 Team sync\n🏷 #meeting #team_work\n⏰ Tue, 02 Jan 2024 18:00 IST (in about 8 hours)\n📍 Room 4",
	}, srv.texts())
}

func TestProcessMessage_Degraded(t *testing.T) {
	uc := &mockNoteUseCase{createOut: note.CreateOutput{
		Note:    model.Note{ID: "n1", Summary: "Buy milk", Tags: []string{"note"}},
		Warning: note.WarningDegraded,
	}}
	h, srv := newHandler(t, uc)

	require.NoError(t, h.processMessage(context.Background(), message("Buy milk")))
	assert.Equal(t, []string{"📝 Buy milk\n🏷 #note\n\n⚠️ " + note.WarningDegraded}, srv.texts())
}

func TestProcessMessage_Commands(t *testing.T) {
	uc := &mockNoteUseCase{listOut: note.ListOutput{Notes: []model.Note{
		{ID: "a", Summary: "First"},
		{ID: "b", Summary: "Second", Completed: true},
	}}}
	h, srv := newHandler(t, uc)

	require.NoError(t, h.processMessage(context.Background(), message("/start")))
	require.NoError(t, h.processMessage(context.Background(), message("/help")))
	require.NoError(t, h.processMessage(context.Background(), message("/list")))

	texts := srv.texts()
	require.Len(t, texts, 3)
	assert.Equal(t, startText, texts[0])
	assert.Equal(t, helpText, texts[1])
	assert.Equal(t, "• First\n✓ Second", texts[2])
	assert.Empty(t, uc.input.Content)
}

func TestProcessMessage_UserError(t *testing.T) {
	uc := &mockNoteUseCase{createErr: note.ErrMissingCredential}
	h, srv := newHandler(t, uc)

	require.NoError(t, h.processMessage(context.Background(), message("hello")))
	assert.Equal(t, []string{"Could not save note: " + note.ErrMissingCredential.Error()}, srv.texts())
}

func TestHandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &mockNoteUseCase{createOut: note.CreateOutput{Note: model.Note{Summary: "x"}}}
	h, srv := newHandler(t, uc)

	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(`{"update_id": 1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")

	w = post(`{"update_id": 2, "message": {"message_id": 3, "chat": {"id": 7, "type": "private"}, "text": "/help"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accepted")
	assert.Eventually(t, func() bool { return len(srv.texts()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestFormatList_Limit(t *testing.T) {
	notes := make([]model.Note, 7)
	for i := range notes {
		notes[i] = model.Note{Summary: "n"}
	}
	assert.Equal(t, "• n\n• n\n• n\n• n\n• n\n…and 2 more", formatList(notes, 5))
	assert.Equal(t, "No notes yet.", formatList(nil, 5))
}
