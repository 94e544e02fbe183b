package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

func testTiers() []domain.TierConfig {
	return []domain.TierConfig{
		{ID: "member", Name: "Member", Threshold: 0, Benefits: domain.TierBenefits{PointsMultiplier: 1.0}},
		{ID: "silver", Name: "Silver", Threshold: 1000, Benefits: domain.TierBenefits{PointsMultiplier: 1.2, DiscountPercent: 5}},
		{ID: "gold", Name: "Gold", Threshold: 3000, Benefits: domain.TierBenefits{PointsMultiplier: 1.5, DiscountPercent: 10}},
	}
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []domain.TierConfig
		wantErr error
	}{
		{"valid", testTiers(), nil},
		{"empty", nil, domain.ErrEmptyTierTable},
		{"unsorted", []domain.TierConfig{
			{ID: "a", Threshold: 0},
			{ID: "b", Threshold: 500},
			{ID: "c", Threshold: 200},
		}, domain.ErrTierTableUnsorted},
		{"equal thresholds", []domain.TierConfig{
			{ID: "a", Threshold: 0},
			{ID: "b", Threshold: 0},
		}, domain.ErrTierTableUnsorted},
		{"duplicate id", []domain.TierConfig{
			{ID: "a", Threshold: 0},
			{ID: "a", Threshold: 10},
		}, domain.ErrDuplicateTier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.tiers)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.tiers), table.Len())
		})
	}
}

func TestMustNewTable_PanicsOnUnsorted(t *testing.T) {
	assert.Panics(t, func() {
		MustNewTable([]domain.TierConfig{{ID: "a", Threshold: 10}, {ID: "b", Threshold: 5}})
	})
	assert.NotPanics(t, func() { MustNewTable(testTiers()) })
}

func TestTable_IsolatedFromCaller(t *testing.T) {
	tiers := testTiers()
	table := MustNewTable(tiers)

	tiers[0].Name = "Changed"
	out := table.Tiers()
	out[1].Name = "Also changed"

	assert.Equal(t, "Member", table.Lowest().Name)
	silver, ok := table.Lookup("silver")
	require.True(t, ok)
	assert.Equal(t, "Silver", silver.Name)
}

func TestResolve(t *testing.T) {
	table := MustNewTable(testTiers())

	tests := []struct {
		points int64
		want   string
	}{
		{-50, "member"},
		{0, "member"},
		{999, "member"},
		{1000, "silver"},
		{2999, "silver"},
		{3000, "gold"},
		{1_000_000, "gold"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Resolve(tt.points).ID, "points=%d", tt.points)
	}
}

func TestResolve_HighestQualifyingTier(t *testing.T) {
	table := MustNewTable(DefaultTiers())
	tiers := table.Tiers()

	for p := int64(0); p <= 6000; p += 37 {
		got := table.Resolve(p)
		assert.LessOrEqual(t, got.Threshold, p)

		rank, ok := table.Rank(got.ID)
		require.True(t, ok)
		for _, higher := range tiers[rank+1:] {
			assert.Greater(t, higher.Threshold, p, "tier %s also qualifies at %d", higher.ID, p)
		}
	}
}

func TestResolve_FallsBackToLowestWhenNoneQualify(t *testing.T) {
	table := MustNewTable([]domain.TierConfig{
		{ID: "starter", Threshold: 100},
		{ID: "pro", Threshold: 200},
	})
	assert.Equal(t, "starter", table.Resolve(50).ID)
}

func TestNext(t *testing.T) {
	table := MustNewTable(testTiers())

	next, ok := table.Next("member")
	require.True(t, ok)
	assert.Equal(t, "silver", next.ID)

	_, ok = table.Next("gold")
	assert.False(t, ok, "top tier has no next tier")

	_, ok = table.Next("diamond")
	assert.False(t, ok, "unknown tier has no next tier")
}

func TestRankAndLookup(t *testing.T) {
	table := MustNewTable(testTiers())

	rank, ok := table.Rank("gold")
	require.True(t, ok)
	assert.Equal(t, 2, rank)

	_, ok = table.Rank("diamond")
	assert.False(t, ok)

	_, ok = table.Lookup("diamond")
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	table := MustNewTable(testTiers())

	tests := []struct {
		name         string
		points       int64
		wantCurrent  string
		wantNext     string
		wantPercent  float64
		wantRequired int64
	}{
		{"start of lowest tier", 0, "member", "silver", 0, 1000},
		{"halfway", 500, "member", "silver", 50, 500},
		{"one below boundary", 999, "member", "silver", 99.9, 1},
		{"at boundary", 1000, "silver", "gold", 0, 2000},
		{"mid silver", 2000, "silver", "gold", 50, 1000},
		{"top tier", 3000, "gold", "", 100, 0},
		{"beyond top tier", 99999, "gold", "", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Progress(tt.points)

			assert.Equal(t, tt.wantCurrent, got.CurrentTier.ID)
			if tt.wantNext == "" {
				assert.Nil(t, got.NextTier)
			} else {
				require.NotNil(t, got.NextTier)
				assert.Equal(t, tt.wantNext, got.NextTier.ID)
			}
			assert.InDelta(t, tt.wantPercent, got.ProgressPercent, 1e-9)
			assert.Equal(t, tt.wantRequired, got.PointsNeeded)
		})
	}
}

func TestProgress_AlwaysWithinBounds(t *testing.T) {
	table := MustNewTable([]domain.TierConfig{
		{ID: "starter", Threshold: 100},
		{ID: "pro", Threshold: 200},
	})

	for _, p := range []int64{-1000, 0, 50, 99, 100, 150, 199, 200, 5000} {
		got := table.Progress(p)
		assert.GreaterOrEqual(t, got.ProgressPercent, MinProgressPercent, "points=%d", p)
		assert.LessOrEqual(t, got.ProgressPercent, MaxProgressPercent, "points=%d", p)
		assert.GreaterOrEqual(t, got.PointsNeeded, int64(0), "points=%d", p)
	}

	assert.Less(t, table.Progress(199).ProgressPercent, 100.0)
}
