package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-notes/internal/middleware"
	"smart-notes/internal/note"
	tgDelivery "smart-notes/internal/note/delivery/telegram"
	"smart-notes/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware

	noteUC          note.UseCase
	events          http.Handler
	metrics         http.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RatePerMin  int

	NoteUseCase note.UseCase
	// Events streams note and alert events to browsers.
	Events http.Handler
	// Metrics exposes Prometheus metrics; nil disables /metrics.
	Metrics http.Handler
	// TelegramHandler is nil when no bot is configured.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      middleware.New(logger, cfg.RatePerMin),
		noteUC:          cfg.NoteUseCase,
		events:          cfg.Events,
		metrics:         cfg.Metrics,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.noteUC == nil {
		return errors.New("note usecase is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
