package loyalty_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/event"
	"github.com/osse101/WashRewards_Go/internal/loyalty"
	"github.com/osse101/WashRewards_Go/internal/referral"
	"github.com/osse101/WashRewards_Go/internal/tier"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func sampleProfile() domain.LoyaltyProfile {
	last := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return domain.LoyaltyProfile{
		LifetimePoints:  2400,
		CurrentPoints:   800,
		Tier:            tier.TierGold,
		XP:              1750,
		StreakDays:      13,
		LongestStreak:   21,
		TotalWashes:     42,
		LastWashDate:    &last,
		PreferredTimes:  []string{"morning"},
		RedemptionCount: 3,
	}
}

// --- Benchmark Functions ---

// BenchmarkSummary measures the full aggregate used by the dashboard endpoint.
func BenchmarkSummary(b *testing.B) {
	svc := loyalty.NewService(tier.DefaultTable(), nil, &StubBus{})
	ctx := context.Background()
	profile := sampleProfile()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Summary(ctx, "user-123", profile, now); err != nil {
			b.Fatalf("Summary failed: %v", err)
		}
	}
}

// BenchmarkWashEarnings measures the per-transaction hot path.
func BenchmarkWashEarnings(b *testing.B) {
	svc := loyalty.NewService(tier.DefaultTable(), nil, &StubBus{})
	ctx := context.Background()
	in := loyalty.WashInput{
		Amount:           decimal.RequireFromString("24.99"),
		IsFirstWashToday: true,
		Profile:          sampleProfile(),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.WashEarnings(ctx, in); err != nil {
			b.Fatalf("WashEarnings failed: %v", err)
		}
	}
}

// BenchmarkReferralCode compares the raw codec with the LRU-backed one
// over a working set that fits in the cache.
func BenchmarkReferralCode(b *testing.B) {
	ids := make([]string, 256)
	for i := range ids {
		ids[i] = uuid.NewString()
	}

	codecs := map[string]referral.Codec{
		"uncached": referral.NewCodec(nil),
		"cached":   referral.NewCachedCodec(referral.NewCodec(nil), len(ids), time.Hour),
	}

	for name, codec := range codecs {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = codec.Code(ids[i%len(ids)])
			}
		})
	}
}

// BenchmarkTierResolve measures resolution against tables of increasing size.
func BenchmarkTierResolve(b *testing.B) {
	for _, n := range []int{4, 16, 64} {
		tiers := make([]domain.TierConfig, n)
		for i := range tiers {
			tiers[i] = domain.TierConfig{
				ID:        fmt.Sprintf("t%d", i),
				Name:      fmt.Sprintf("Tier %d", i),
				Threshold: int64(i * 1000),
				Benefits:  domain.TierBenefits{PointsMultiplier: 1},
			}
		}
		table := tier.MustNewTable(tiers)

		b.Run(fmt.Sprintf("tiers=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = table.Resolve(int64(i % (n * 1000)))
			}
		})
	}
}
