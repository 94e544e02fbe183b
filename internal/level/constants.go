package level

// XP formula constants
const (
	// XPPerLevelStep is the width multiplier of a level band: level L spans L * XPPerLevelStep XP
	XPPerLevelStep = 100

	// StartingLevel is the level of a member with no XP
	StartingLevel = 1

	// MaxXP is the largest XP total the engine levels. Larger totals are treated as MaxXP.
	// Level(MaxXP) is 141421, so the level loop stays short.
	MaxXP int64 = 1_000_000_000_000
)
