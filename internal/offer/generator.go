// Package offer assembles personalized promotional offers from profile signals.
package offer

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/tier"
)

// Personalized returns every offer the profile qualifies for.
// Rules are independent; offers appear in rule order: time based, frequency, tier upgrade, comeback.
// The result is never nil.
func Personalized(table *tier.Table, profile domain.LoyaltyProfile, now time.Time) []domain.Offer {
	p := message.NewPrinter(language.English)
	offers := []domain.Offer{}

	if len(profile.PreferredTimes) > 0 {
		offers = append(offers, domain.Offer{
			ID:          IDTimeBased,
			Title:       "Your Usual Time, For Less",
			Description: p.Sprintf("%d%% off your next wash during your preferred time (%s)", TimeBasedDiscount, profile.PreferredTimes[0]),
			Discount:    TimeBasedDiscount,
			ExpiresIn:   ExpiresInWeek,
			Type:        domain.OfferTypeTimeBased,
		})
	}

	if profile.TotalWashes >= FrequencyMinWashes && profile.TotalWashes < FrequencyMaxWashes {
		offers = append(offers, domain.Offer{
			ID:          IDFrequency,
			Title:       "Keep The Streak Rolling",
			Description: p.Sprintf("%d more washes → %d bonus points", FrequencyWashTarget, FrequencyBonusPoints),
			Discount:    0,
			ExpiresIn:   ExpiresInMonth,
			Type:        domain.OfferTypeFrequency,
		})
	}

	// Estimated from wash count, not the member's real lifetime points.
	progress := table.Progress(int64(profile.TotalWashes) * EstimatedPointsPerWash)
	if progress.NextTier != nil && progress.PointsNeeded < TierUpgradeWindow {
		next := progress.NextTier
		offers = append(offers, domain.Offer{
			ID:    IDTierUpgrade,
			Title: p.Sprintf("Almost %s!", next.Name),
			Description: p.Sprintf("Just %d more points to reach %s and unlock %d%% off every wash",
				progress.PointsNeeded, next.Name, next.Benefits.DiscountPercent),
			Discount:  0,
			ExpiresIn: ExpiresInTwoWeeks,
			Type:      domain.OfferTypeTierUpgrade,
		})
	}

	if profile.LastWashDate != nil {
		daysSince := int(now.Sub(*profile.LastWashDate) / day)
		if daysSince >= ComebackInactiveDays {
			offers = append(offers, domain.Offer{
				ID:          IDComeback,
				Title:       "We Miss You!",
				Description: p.Sprintf("%d%% off your next wash plus %d bonus points", ComebackDiscount, ComebackBonusPoints),
				Discount:    ComebackDiscount,
				ExpiresIn:   ExpiresInWeek,
				Type:        domain.OfferTypeComeback,
			})
		}
	}

	return offers
}
