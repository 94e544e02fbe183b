// Package level maps accumulated XP to member levels.
//
// Level bands grow linearly, so cumulative requirements are triangular:
// reaching level N takes 100 * (N-1) * N / 2 XP in total.
package level

import (
	"math"
	"math/bits"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Level returns the 1-based level for a total XP amount.
// Negative XP is treated as zero and XP above MaxXP as MaxXP.
func Level(xp int64) int {
	xp = clampXP(xp)
	level := StartingLevel
	cumulative := int64(0)

	for xp-cumulative >= XPForNextLevel(level) {
		cumulative += XPForNextLevel(level)
		level++
	}

	return level
}

// XPForNextLevel returns the width of the XP band for currentLevel
func XPForNextLevel(currentLevel int) int64 {
	return int64(currentLevel) * XPPerLevelStep
}

// XPToReach returns the cumulative XP required to reach a specific level from zero.
// Requirements that do not fit in an int64 saturate at math.MaxInt64.
func XPToReach(level int) int64 {
	if level <= StartingLevel {
		return 0
	}
	n := uint64(level)
	// one of n, n-1 is even, so halve it before multiplying
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	hi, triangular := bits.Mul64(a, b)
	if hi != 0 || triangular > math.MaxInt64/XPPerLevelStep {
		return math.MaxInt64
	}
	return int64(triangular) * XPPerLevelStep
}

// Progress returns the level for xp and how far xp sits inside that level's band.
// ProgressPercent is not clamped. XP above MaxXP reports the progress of MaxXP.
func Progress(xp int64) domain.LevelProgress {
	xp = clampXP(xp)
	current := Level(xp)
	inLevel := xp - XPToReach(current)
	needed := XPForNextLevel(current)

	return domain.LevelProgress{
		Level:            current,
		XPInCurrentLevel: inLevel,
		XPNeededForNext:  needed,
		ProgressPercent:  float64(inLevel) / float64(needed) * 100,
	}
}

func clampXP(xp int64) int64 {
	if xp > MaxXP {
		return MaxXP
	}
	return xp
}
