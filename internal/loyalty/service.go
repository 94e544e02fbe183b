// Package loyalty composes the reward engines into a single service used by the HTTP layer.
package loyalty

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/WashRewards_Go/internal/badge"
	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/event"
	"github.com/osse101/WashRewards_Go/internal/level"
	"github.com/osse101/WashRewards_Go/internal/logger"
	"github.com/osse101/WashRewards_Go/internal/offer"
	"github.com/osse101/WashRewards_Go/internal/points"
	"github.com/osse101/WashRewards_Go/internal/redemption"
	"github.com/osse101/WashRewards_Go/internal/referral"
	"github.com/osse101/WashRewards_Go/internal/streak"
	"github.com/osse101/WashRewards_Go/internal/tier"
)

// WashInput describes one completed wash
type WashInput struct {
	Amount           decimal.Decimal
	IsFirstWashToday bool
	Profile          domain.LoyaltyProfile
}

// Service defines the loyalty business logic
type Service interface {
	// Aggregate view
	Summary(ctx context.Context, userID string, profile domain.LoyaltyProfile, now time.Time) (*domain.LoyaltySummary, error)

	// Earning
	WashEarnings(ctx context.Context, in WashInput) (*domain.WashEarnings, error)

	// Spending
	CheckRedemption(ctx context.Context, reward domain.Reward, profile domain.LoyaltyProfile) domain.RedemptionDecision

	// Achievements and promotions
	EvaluateBadges(ctx context.Context, stats domain.UserStats, earned map[string]bool) []badge.Definition
	EvaluateCondition(ctx context.Context, cond domain.BadgeCondition, stats domain.UserStats) bool
	Offers(ctx context.Context, profile domain.LoyaltyProfile, now time.Time) []domain.Offer

	// Referrals
	ReferralCode(ctx context.Context, userID string) string
	ReferralRewards() domain.ReferralRewards

	// Configuration
	Tiers() []domain.TierConfig
	Tier(ctx context.Context, id string) (domain.TierConfig, error)
}

// cacheLookup is implemented by codecs that can report cache hits
type cacheLookup interface {
	Lookup(userID string) (string, bool)
}

type service struct {
	table    *tier.Table
	codec    referral.Codec
	catalog  []badge.Definition
	eventBus event.Bus
	validate *validator.Validate
}

// NewService creates a new loyalty service.
// A nil codec uses the uncached default; a nil bus disables event publishing.
func NewService(table *tier.Table, codec referral.Codec, eventBus event.Bus) Service {
	if codec == nil {
		codec = referral.NewCodec(nil)
	}
	return &service{
		table:    table,
		codec:    codec,
		catalog:  badge.DefaultCatalog(),
		eventBus: eventBus,
		validate: validator.New(),
	}
}

func (s *service) Summary(ctx context.Context, userID string, profile domain.LoyaltyProfile, now time.Time) (*domain.LoyaltySummary, error) {
	if err := s.validateProfile(profile); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	current := s.resolveTier(ctx, profile.LifetimePoints)

	summary := &domain.LoyaltySummary{
		Tier:            current,
		TierProgress:    s.table.Progress(profile.LifetimePoints),
		Level:           level.Progress(profile.XP),
		StreakBonus:     streak.Bonus(profile.StreakDays),
		StreakMilestone: streak.Milestone(profile.StreakDays),
		Offers:          s.Offers(ctx, profile, now),
	}
	if next, ok := streak.NextMilestone(profile.StreakDays); ok {
		summary.NextMilestone = &next
	}
	if userID != "" {
		summary.ReferralCode = s.ReferralCode(ctx, userID)
	}

	log.Debug(LogMsgSummaryComputed,
		"tier", current.ID,
		"level", summary.Level.Level,
		"offers", len(summary.Offers))
	return summary, nil
}

func (s *service) WashEarnings(ctx context.Context, in WashInput) (*domain.WashEarnings, error) {
	if err := s.validateProfile(in.Profile); err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidInput)
	}
	log := logger.FromContext(ctx)

	current, ok := s.table.Lookup(in.Profile.Tier)
	if !ok {
		if in.Profile.Tier != "" {
			log.Debug(LogMsgUnknownProfileTier, "tier", in.Profile.Tier)
		}
		current = s.resolveTier(ctx, in.Profile.LifetimePoints)
	}

	base := points.WashPoints(in.Amount, &current)
	bonus := streak.Bonus(in.Profile.StreakDays)
	earnings := &domain.WashEarnings{
		TierID:      current.ID,
		BasePoints:  base,
		StreakBonus: bonus,
		TotalPoints: points.StreakAdjustedPoints(base, bonus),
		XP:          points.WashXP(in.Amount, in.IsFirstWashToday),
	}

	log.Debug(LogMsgWashEarnings,
		"tier", earnings.TierID,
		"amount", in.Amount.String(),
		"total_points", earnings.TotalPoints,
		"xp", earnings.XP)
	return earnings, nil
}

func (s *service) CheckRedemption(ctx context.Context, reward domain.Reward, profile domain.LoyaltyProfile) domain.RedemptionDecision {
	decision := redemption.CanRedeem(s.table, reward, profile)

	logger.FromContext(ctx).Debug(LogMsgRedemptionChecked,
		"reward_id", reward.ID,
		"can_redeem", decision.CanRedeem,
		"code", decision.Code)
	s.publish(ctx, event.NewRedemptionCheckedEvent(reward.ID, decision))
	return decision
}

func (s *service) EvaluateBadges(ctx context.Context, stats domain.UserStats, earned map[string]bool) []badge.Definition {
	unlocked := badge.Unlocked(s.catalog, stats, earned)

	logger.FromContext(ctx).Debug(LogMsgBadgesEvaluated, "unlocked", len(unlocked))
	for _, def := range unlocked {
		s.publish(ctx, event.NewBadgeUnlockedEvent(def.Code))
	}
	return unlocked
}

func (s *service) EvaluateCondition(ctx context.Context, cond domain.BadgeCondition, stats domain.UserStats) bool {
	ok := badge.Evaluate(cond, stats)
	logger.FromContext(ctx).Debug(LogMsgConditionEvaluated,
		"type", cond.Type,
		"operator", cond.Operator,
		"value", cond.Value,
		"result", ok)
	return ok
}

func (s *service) Offers(ctx context.Context, profile domain.LoyaltyProfile, now time.Time) []domain.Offer {
	offers := offer.Personalized(s.table, profile, now)

	logger.FromContext(ctx).Debug(LogMsgOffersGenerated, "count", len(offers))
	if len(offers) > 0 {
		s.publish(ctx, event.NewOffersGeneratedEvent(offers))
	}
	return offers
}

func (s *service) ReferralCode(ctx context.Context, userID string) string {
	var code string
	if cached, ok := s.codec.(cacheLookup); ok {
		var hit bool
		code, hit = cached.Lookup(userID)
		s.publish(ctx, event.NewReferralLookupEvent(hit))
	} else {
		code = s.codec.Code(userID)
	}

	logger.FromContext(ctx).Debug(LogMsgReferralCode, "code", code)
	return code
}

func (s *service) ReferralRewards() domain.ReferralRewards {
	return referral.Rewards()
}

func (s *service) Tiers() []domain.TierConfig {
	return s.table.Tiers()
}

func (s *service) Tier(ctx context.Context, id string) (domain.TierConfig, error) {
	cfg, ok := s.table.Lookup(id)
	if !ok {
		return domain.TierConfig{}, fmt.Errorf("%w: %s", domain.ErrTierNotFound, id)
	}
	return cfg, nil
}

func (s *service) resolveTier(ctx context.Context, lifetimePoints int64) domain.TierConfig {
	current := s.table.Resolve(lifetimePoints)
	s.publish(ctx, event.NewTierResolvedEvent(current.ID, lifetimePoints))
	return current
}

func (s *service) validateProfile(profile domain.LoyaltyProfile) error {
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// publish never fails the caller; metrics are best effort.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
