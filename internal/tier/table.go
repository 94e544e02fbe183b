package tier

import (
	"fmt"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Table is an immutable, rank-ordered list of tiers.
// Index 0 is the lowest tier and thresholds are strictly increasing.
// A Table is safe for concurrent use.
type Table struct {
	tiers []domain.TierConfig
	index map[string]int
}

// NewTable validates and copies the given tiers into a Table.
// The tiers must already be sorted ascending by threshold; NewTable does not sort them.
func NewTable(tiers []domain.TierConfig) (*Table, error) {
	if len(tiers) == 0 {
		return nil, domain.ErrEmptyTierTable
	}

	t := &Table{
		tiers: make([]domain.TierConfig, len(tiers)),
		index: make(map[string]int, len(tiers)),
	}
	copy(t.tiers, tiers)

	for i, cfg := range t.tiers {
		if _, exists := t.index[cfg.ID]; exists {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateTier, cfg.ID)
		}
		t.index[cfg.ID] = i

		if i > 0 && cfg.Threshold <= t.tiers[i-1].Threshold {
			return nil, fmt.Errorf("%w: %q (%d) follows %q (%d)", domain.ErrTierTableUnsorted,
				cfg.ID, cfg.Threshold, t.tiers[i-1].ID, t.tiers[i-1].Threshold)
		}
	}

	return t, nil
}

// MustNewTable is like NewTable but panics if the tiers violate the table invariants.
// Use it for tables that are compiled into the binary.
func MustNewTable(tiers []domain.TierConfig) *Table {
	t, err := NewTable(tiers)
	if err != nil {
		panic(fmt.Sprintf("tier: invalid tier table: %v", err))
	}
	return t
}

// Len returns the number of tiers
func (t *Table) Len() int {
	return len(t.tiers)
}

// Tiers returns a copy of the tiers in rank order
func (t *Table) Tiers() []domain.TierConfig {
	out := make([]domain.TierConfig, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Lowest returns the lowest-ranked tier
func (t *Table) Lowest() domain.TierConfig {
	return t.tiers[0]
}

// Lookup returns the tier with the given id
func (t *Table) Lookup(id string) (domain.TierConfig, bool) {
	i, ok := t.index[id]
	if !ok {
		return domain.TierConfig{}, false
	}
	return t.tiers[i], true
}

// Rank returns the position of the tier with the given id
func (t *Table) Rank(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}
