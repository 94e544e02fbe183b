package referral

import "unicode/utf16"

// Hasher maps a user id to a 32-bit signed hash.
type Hasher interface {
	Sum32(s string) int32
}

// PolynomialHash31 is the rolling hash h = h*31 + c over the UTF-16 code units of s,
// wrapping on int32 overflow. It is fast, stable across processes, and has no
// collision resistance at all: distinct ids routinely share a hash.
type PolynomialHash31 struct{}

// Sum32 implements Hasher.
func (PolynomialHash31) Sum32(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*hashMultiplier + int32(unit)
	}
	return h
}
