package track_event

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/analytics"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// Dispatcher accepts events for asynchronous delivery.
type Dispatcher interface {
	Dispatch(e analytics.Event) bool
}

// Request contains the tracked event and the caller's network identity.
type Request struct {
	Event      string
	Properties map[string]any
	UserID     string
	Timestamp  string
	IP         string
	UserAgent  string
}

// Response identifies the accepted event.
type Response struct {
	EventID string
}

// Interactor handles the track event use case.
type Interactor struct {
	dispatcher Dispatcher
	clock      clock.Clock
	logger     *zap.Logger
}

// NewInteractor creates a new track event interactor.
func NewInteractor(dispatcher Dispatcher, clock clock.Clock, logger *zap.Logger) *Interactor {
	return &Interactor{
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

// Execute enriches the event and hands it off. Delivery is fire-and-forget:
// an event dropped under load is logged, not reported to the caller.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.Event)
	if name == "" {
		return nil, domain.ErrMissingEventName
	}

	event := analytics.Event{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: req.Properties,
		UserID:     req.UserID,
		SentAt:     req.Timestamp,
		ReceivedAt: i.clock.Now(),
		IP:         req.IP,
		UserAgent:  req.UserAgent,
	}

	if !i.dispatcher.Dispatch(event) {
		i.logger.Warn("analytics event dropped", zap.String("event_id", event.ID), zap.String("event", name))
	}
	return &Response{EventID: event.ID}, nil
}
