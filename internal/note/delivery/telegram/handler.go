package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-notes/internal/model"
	"smart-notes/internal/note"
	pkgResponse "smart-notes/pkg/response"
	pkgTelegram "smart-notes/pkg/telegram"
)

// listLimit caps the notes shown by /list.
const listLimit = 5

// HandleWebhook acknowledges the update right away and creates the note in
// the background, since analysis can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, "Something went wrong while saving your note. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Command() {
	case "start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startText, pkgTelegram.ParseModeMarkdown)
	case "help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, pkgTelegram.ParseModeMarkdown)
	case "list":
		return h.sendList(ctx, msg)
	}

	out, err := h.uc.Create(ctx, scopeOf(msg), note.CreateInput{Content: msg.Text})
	if err != nil {
		if errors.Is(err, note.ErrEmptyContent) || errors.Is(err, note.ErrMissingCredential) {
			return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf("Could not save note: %v", err))
		}
		return err
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatCreated(out))
}

func (h *handler) sendList(ctx context.Context, msg *pkgTelegram.Message) error {
	out, err := h.uc.List(ctx, scopeOf(msg), note.ListInput{})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, formatList(out.Notes, listLimit))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{Source: model.SourceTelegram}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return sc
}
