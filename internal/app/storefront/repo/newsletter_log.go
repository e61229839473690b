package repo

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/contracts"
)

// LogNewsletterSink records subscriptions in the service log only.
type LogNewsletterSink struct {
	logger *zap.Logger
}

var _ contracts.NewsletterSink = (*LogNewsletterSink)(nil)

// NewLogNewsletterSink creates a LogNewsletterSink.
func NewLogNewsletterSink(logger *zap.Logger) *LogNewsletterSink {
	return &LogNewsletterSink{logger: logger.Named("newsletter")}
}

// Subscribe implements contracts.NewsletterSink.
func (s *LogNewsletterSink) Subscribe(_ context.Context, sub contracts.Subscription) error {
	s.logger.Info("newsletter signup",
		zap.String("email", sub.Email),
		zap.String("source", sub.Source),
		zap.Time("subscribed_at", sub.SubscribedAt),
	)
	return nil
}
