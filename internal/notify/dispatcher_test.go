package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-notes/internal/notify"
	pkgLog "smart-notes/pkg/log"
	"smart-notes/pkg/sse"
	pkgTelegram "smart-notes/pkg/telegram"
)

type recordingSink struct {
	mu   sync.Mutex
	got  []notify.Notification
	fail bool
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Send(ctx context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.got = append(s.got, n)
	return nil
}

func TestDispatcher_Permission(t *testing.T) {
	ctx := context.Background()

	t.Run("Default becomes granted with sinks", func(t *testing.T) {
		d := notify.NewDispatcher(pkgLog.NewNop(), notify.PermissionDefault, &recordingSink{})
		assert.Equal(t, notify.PermissionGranted, d.RequestPermission(ctx))
	})

	t.Run("Default becomes denied without sinks", func(t *testing.T) {
		d := notify.NewDispatcher(pkgLog.NewNop(), notify.PermissionDefault)
		assert.Equal(t, notify.PermissionDenied, d.RequestPermission(ctx))
	})

	t.Run("Decided permission is not re-asked", func(t *testing.T) {
		d := notify.NewDispatcher(pkgLog.NewNop(), notify.PermissionDenied, &recordingSink{})
		assert.Equal(t, notify.PermissionDenied, d.RequestPermission(ctx))
		assert.Equal(t, notify.PermissionDenied, d.RequestPermission(ctx))
	})

	assert.Equal(t, notify.PermissionGranted, notify.ParsePermission("granted"))
	assert.Equal(t, notify.PermissionDenied, notify.ParsePermission("denied"))
	assert.Equal(t, notify.PermissionDefault, notify.ParsePermission("maybe"))
}

func TestDispatcher_Notify(t *testing.T) {
	ctx := context.Background()
	n := notify.Notification{Title: "Upcoming Event", Body: "Standup - Starting in exactly 15 minutes", NoteID: "n1"}

	t.Run("Granted fans out and tolerates failures", func(t *testing.T) {
		ok := &recordingSink{}
		bad := &recordingSink{fail: true}
		d := notify.NewDispatcher(pkgLog.NewNop(), notify.PermissionGranted, bad, ok)

		d.Notify(ctx, n)
		assert.Equal(t, []notify.Notification{n}, ok.got)
	})

	t.Run("Denied is silent", func(t *testing.T) {
		s := &recordingSink{}
		d := notify.NewDispatcher(pkgLog.NewNop(), notify.PermissionDenied, s)

		d.Notify(ctx, n)
		assert.Empty(t, s.got)
	})

	t.Run("Undecided is silent", func(t *testing.T) {
		s := &recordingSink{}
		d := notify.NewDispatcher(pkgLog.NewNop(), notify.PermissionDefault, s)

		d.Notify(ctx, n)
		assert.Empty(t, s.got)
	})
}

func TestTelegramSink(t *testing.T) {
	var gotText string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgTelegram.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotText = req.Text
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	bot := pkgTelegram.NewBot("t")
	bot.SetAPIURL(ts.URL)
	s := notify.NewTelegramSink(bot, 42)

	require.NoError(t, s.Send(context.Background(), notify.Notification{Title: "Upcoming Event", Body: "Standup"}))
	assert.True(t, strings.Contains(gotText, "Upcoming Event"))
	assert.True(t, strings.Contains(gotText, "Standup"))
	assert.Equal(t, "telegram", s.Name())
}

func TestSSESink(t *testing.T) {
	b := sse.NewBroker()
	defer b.Close()
	ch := b.Subscribe()

	s := notify.NewSSESink(b)
	require.NoError(t, s.Send(context.Background(), notify.Notification{Title: "Upcoming Event", NoteID: "n1"}))

	select {
	case msg := <-ch:
		assert.Contains(t, string(msg), "event: countdown.alert")
		assert.Contains(t, string(msg), `"note_id":"n1"`)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}
