// Package analytics hands storefront events to a delivery sink without
// blocking the request that produced them.
package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Event is one tracked storefront interaction.
type Event struct {
	ID         string         `json:"id"`
	Name       string         `json:"event"`
	Properties map[string]any `json:"properties,omitempty"`
	UserID     string         `json:"userId,omitempty"`
	SentAt     string         `json:"timestamp,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
}

// Sink delivers events to their destination.
type Sink interface {
	Deliver(ctx context.Context, e Event) error
}

// LogSink writes events to a zap logger.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("analytics")}
}

// Deliver implements Sink.
func (s *LogSink) Deliver(_ context.Context, e Event) error {
	s.logger.Info("analytics event",
		zap.String("event_id", e.ID),
		zap.String("event", e.Name),
		zap.Any("properties", e.Properties),
		zap.String("user_id", e.UserID),
		zap.String("sent_at", e.SentAt),
		zap.Time("received_at", e.ReceivedAt),
		zap.String("ip", e.IP),
		zap.String("user_agent", e.UserAgent),
	)
	return nil
}
