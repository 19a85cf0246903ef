package notify

import (
	"context"
	"fmt"

	"smart-notes/pkg/sse"
	pkgTelegram "smart-notes/pkg/telegram"
)

// EventAlert is the SSE event type carrying a Notification.
const EventAlert = "countdown.alert"

type telegramSink struct {
	bot    *pkgTelegram.Bot
	chatID int64
}

// NewTelegramSink sends alerts as a chat message.
func NewTelegramSink(bot *pkgTelegram.Bot, chatID int64) Sink {
	return &telegramSink{bot: bot, chatID: chatID}
}

func (s *telegramSink) Name() string { return "telegram" }

func (s *telegramSink) Send(ctx context.Context, n Notification) error {
	return s.bot.SendMessage(ctx, s.chatID, fmt.Sprintf("🔔 %s\n%s", n.Title, n.Body))
}

type sseSink struct {
	broker *sse.Broker
}

// NewSSESink publishes alerts to connected event-stream clients.
func NewSSESink(broker *sse.Broker) Sink {
	return &sseSink{broker: broker}
}

func (s *sseSink) Name() string { return "sse" }

func (s *sseSink) Send(_ context.Context, n Notification) error {
	s.broker.Publish(sse.Event{Type: EventAlert, Data: n})
	return nil
}
