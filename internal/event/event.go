package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Loyalty event types
const (
	TierResolved      Type = "loyalty.tier.resolved"
	RedemptionChecked Type = "loyalty.redemption.checked"
	OffersGenerated   Type = "loyalty.offers.generated"
	BadgeUnlocked     Type = "loyalty.badge.unlocked"
	ReferralLookup    Type = "loyalty.referral.lookup"
)

// AllTypes lists every loyalty event type, in publication-independent order
var AllTypes = []Type{TierResolved, RedemptionChecked, OffersGenerated, BadgeUnlocked, ReferralLookup}

// Typed event payloads for type safety

// TierResolvedPayloadV1 is emitted whenever a tier is derived from lifetime points
type TierResolvedPayloadV1 struct {
	TierID         string `json:"tier_id"`
	LifetimePoints int64  `json:"lifetime_points"`
	Timestamp      int64  `json:"timestamp"`
}

// RedemptionCheckedPayloadV1 records the outcome of a redemption check
type RedemptionCheckedPayloadV1 struct {
	RewardID  string            `json:"reward_id,omitempty"`
	Allowed   bool              `json:"allowed"`
	Code      domain.DenialCode `json:"code,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// OffersGeneratedPayloadV1 lists the offer types produced for one profile
type OffersGeneratedPayloadV1 struct {
	Types     []domain.OfferType `json:"types"`
	Timestamp int64              `json:"timestamp"`
}

// BadgeUnlockedPayloadV1 is emitted once per newly unlocked badge
type BadgeUnlockedPayloadV1 struct {
	BadgeCode string `json:"badge_code"`
	Timestamp int64  `json:"timestamp"`
}

// ReferralLookupPayloadV1 records whether a referral code came from cache
type ReferralLookupPayloadV1 struct {
	CacheHit  bool  `json:"cache_hit"`
	Timestamp int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewTierResolvedEvent creates a tier resolution event
func NewTierResolvedEvent(tierID string, lifetimePoints int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TierResolved,
		Payload: TierResolvedPayloadV1{
			TierID:         tierID,
			LifetimePoints: lifetimePoints,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewRedemptionCheckedEvent creates a redemption outcome event
func NewRedemptionCheckedEvent(rewardID string, decision domain.RedemptionDecision) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RedemptionChecked,
		Payload: RedemptionCheckedPayloadV1{
			RewardID:  rewardID,
			Allowed:   decision.CanRedeem,
			Code:      decision.Code,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewOffersGeneratedEvent creates an offer generation event
func NewOffersGeneratedEvent(offers []domain.Offer) Event {
	types := make([]domain.OfferType, 0, len(offers))
	for _, o := range offers {
		types = append(types, o.Type)
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    OffersGenerated,
		Payload: OffersGeneratedPayloadV1{
			Types:     types,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBadgeUnlockedEvent creates a badge unlock event
func NewBadgeUnlockedEvent(badgeCode string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeUnlocked,
		Payload: BadgeUnlockedPayloadV1{
			BadgeCode: badgeCode,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewReferralLookupEvent creates a referral code lookup event
func NewReferralLookupEvent(cacheHit bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReferralLookup,
		Payload: ReferralLookupPayloadV1{
			CacheHit:  cacheHit,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
