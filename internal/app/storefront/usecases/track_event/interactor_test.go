package track_event

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/analytics"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
	"github.com/light-bringer/ecofinds-storefront/internal/testutil"
)

type fakeDispatcher struct {
	events []analytics.Event
	accept bool
}

func (d *fakeDispatcher) Dispatch(e analytics.Event) bool {
	d.events = append(d.events, e)
	return d.accept
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(testutil.BaseTime)

	t.Run("enriches and dispatches", func(t *testing.T) {
		d := &fakeDispatcher{accept: true}
		resp, err := NewInteractor(d, clk, zap.NewNop()).Execute(ctx, &Request{
			Event:      "click_clearance_brand",
			Properties: map[string]any{"brand": "Patagonia"},
			UserID:     "u-7",
			Timestamp:  "2024-01-01T11:59:58Z",
			IP:         "198.51.100.4",
			UserAgent:  "Mozilla/5.0",
		})
		require.NoError(t, err)

		_, err = uuid.Parse(resp.EventID)
		require.NoError(t, err)

		require.Len(t, d.events, 1)
		e := d.events[0]
		assert.Equal(t, resp.EventID, e.ID)
		assert.Equal(t, "click_clearance_brand", e.Name)
		assert.Equal(t, "Patagonia", e.Properties["brand"])
		assert.Equal(t, testutil.BaseTime, e.ReceivedAt)
		assert.Equal(t, "198.51.100.4", e.IP)
		assert.Equal(t, "2024-01-01T11:59:58Z", e.SentAt)
	})

	t.Run("missing event name", func(t *testing.T) {
		d := &fakeDispatcher{accept: true}
		_, err := NewInteractor(d, clk, zap.NewNop()).Execute(ctx, &Request{Event: "   "})
		assert.ErrorIs(t, err, domain.ErrMissingEventName)
		assert.Empty(t, d.events)
	})

	t.Run("dropped event still succeeds", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		d := &fakeDispatcher{accept: false}

		resp, err := NewInteractor(d, clk, zap.New(core)).Execute(ctx, &Request{Event: "view_landing"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.EventID)
		assert.Equal(t, 1, logs.FilterMessage("analytics event dropped").Len())
	})
}
