package metrics

import (
	"context"

	"github.com/osse101/WashRewards_Go/internal/event"
	"github.com/osse101/WashRewards_Go/internal/logger"
)

// EventMetricsCollector subscribes to loyalty events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all loyalty events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.TierResolved:
		p, err := event.DecodePayload[event.TierResolvedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		TierResolutions.WithLabelValues(p.TierID).Inc()

	case event.RedemptionChecked:
		p, err := event.DecodePayload[event.RedemptionCheckedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		outcome := OutcomeAllowed
		if !p.Allowed {
			outcome = string(p.Code)
		}
		RedemptionChecks.WithLabelValues(outcome).Inc()

	case event.OffersGenerated:
		p, err := event.DecodePayload[event.OffersGeneratedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		for _, t := range p.Types {
			OffersGenerated.WithLabelValues(string(t)).Inc()
		}

	case event.BadgeUnlocked:
		p, err := event.DecodePayload[event.BadgeUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BadgesUnlocked.WithLabelValues(p.BadgeCode).Inc()

	case event.ReferralLookup:
		p, err := event.DecodePayload[event.ReferralLookupPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		result := ResultMiss
		if p.CacheHit {
			result = ResultHit
		}
		ReferralCache.WithLabelValues(result).Inc()
	}
	return nil
}
