package notify

import "context"

// Sink delivers a notification to one channel.
type Sink interface {
	Name() string
	Send(ctx context.Context, n Notification) error
}

// Notifier is what the countdown engine raises alerts through.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
