package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	tests := []struct {
		name    string
		evt     event.Event
		counter func() float64
	}{
		{
			name:    "tier resolution",
			evt:     event.NewTierResolvedEvent("gold", 2500),
			counter: func() float64 { return testutil.ToFloat64(TierResolutions.WithLabelValues("gold")) },
		},
		{
			name:    "allowed redemption",
			evt:     event.NewRedemptionCheckedEvent("r1", domain.RedemptionDecision{CanRedeem: true}),
			counter: func() float64 { return testutil.ToFloat64(RedemptionChecks.WithLabelValues(OutcomeAllowed)) },
		},
		{
			name: "denied redemption is labeled by code",
			evt: event.NewRedemptionCheckedEvent("r1", domain.RedemptionDecision{
				Code: domain.DenialOutOfStock,
			}),
			counter: func() float64 {
				return testutil.ToFloat64(RedemptionChecks.WithLabelValues(string(domain.DenialOutOfStock)))
			},
		},
		{
			name:    "badge unlock",
			evt:     event.NewBadgeUnlockedEvent("eco_hero"),
			counter: func() float64 { return testutil.ToFloat64(BadgesUnlocked.WithLabelValues("eco_hero")) },
		},
		{
			name:    "referral cache hit",
			evt:     event.NewReferralLookupEvent(true),
			counter: func() float64 { return testutil.ToFloat64(ReferralCache.WithLabelValues(ResultHit)) },
		},
		{
			name:    "referral cache miss",
			evt:     event.NewReferralLookupEvent(false),
			counter: func() float64 { return testutil.ToFloat64(ReferralCache.WithLabelValues(ResultMiss)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.counter()
			published := testutil.ToFloat64(EventsPublished.WithLabelValues(string(tt.evt.Type)))

			require.NoError(t, bus.Publish(ctx, tt.evt))

			assert.Equal(t, before+1, tt.counter())
			assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(tt.evt.Type))))
		})
	}
}

func TestEventMetricsCollector_OffersCountedPerType(t *testing.T) {
	c := NewEventMetricsCollector()
	offers := []domain.Offer{{Type: domain.OfferTypeFrequency}, {Type: domain.OfferTypeComeback}}

	freq := testutil.ToFloat64(OffersGenerated.WithLabelValues(string(domain.OfferTypeFrequency)))
	comeback := testutil.ToFloat64(OffersGenerated.WithLabelValues(string(domain.OfferTypeComeback)))

	require.NoError(t, c.HandleEvent(context.Background(), event.NewOffersGeneratedEvent(offers)))

	assert.Equal(t, freq+1, testutil.ToFloat64(OffersGenerated.WithLabelValues(string(domain.OfferTypeFrequency))))
	assert.Equal(t, comeback+1, testutil.ToFloat64(OffersGenerated.WithLabelValues(string(domain.OfferTypeComeback))))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.BadgeUnlocked)))

	err := c.HandleEvent(context.Background(), event.Event{Type: event.BadgeUnlocked, Payload: "not a payload"})

	assert.NoError(t, err, "bad payloads are counted, not propagated")
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.BadgeUnlocked))))
}
