package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-notes/internal/model"
	"smart-notes/internal/note"
	"smart-notes/pkg/log"
)

type stubNoteUC struct {
	note.UseCase
}

func (stubNoteUC) List(context.Context, model.Scope, note.ListInput) (note.ListOutput, error) {
	return note.ListOutput{}, nil
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err, "note usecase is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, NoteUseCase: stubNoteUC{}})
	assert.Error(t, err, "port is required")
}

func TestRoutes(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		NoteUseCase: stubNoteUC{},
		Metrics:     metrics,
	})
	require.NoError(t, err)

	for _, path := range []string{"/health", "/ready", "/live", "/metrics", "/api/v1/notes"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "no bot configured")
}
