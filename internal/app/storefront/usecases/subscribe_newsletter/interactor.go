package subscribe_newsletter

import (
	"context"
	"fmt"

	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// Request contains the sign-up form fields.
type Request struct {
	Email  string
	Source string
}

// Interactor handles the newsletter subscription use case.
type Interactor struct {
	sink  contracts.NewsletterSink
	clock clock.Clock
}

// NewInteractor creates a new subscribe newsletter interactor.
func NewInteractor(sink contracts.NewsletterSink, clock clock.Clock) *Interactor {
	return &Interactor{
		sink:  sink,
		clock: clock,
	}
}

// Execute validates the address and records the subscription.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	email, err := domain.NormalizeEmail(req.Email)
	if err != nil {
		return err
	}

	sub := contracts.Subscription{
		Email:        email,
		Source:       req.Source,
		SubscribedAt: i.clock.Now(),
	}
	if err := i.sink.Subscribe(ctx, sub); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	return nil
}
