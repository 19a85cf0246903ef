package telegram

import (
	"github.com/gin-gonic/gin"

	"smart-notes/internal/note"
	pkgLog "smart-notes/pkg/log"
	pkgTelegram "smart-notes/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  note.UseCase
	bot *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc note.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{l: l, uc: uc, bot: bot}
}
