package contracts

import (
	"context"
	"time"
)

// Subscription is a confirmed newsletter sign-up.
type Subscription struct {
	Email        string
	Source       string
	SubscribedAt time.Time
}

// NewsletterSink records newsletter subscriptions.
type NewsletterSink interface {
	Subscribe(ctx context.Context, sub Subscription) error
}
