// Package referral derives display referral codes from user ids.
//
// Codes are NOT identifiers: the underlying hash is non-cryptographic and collision-prone,
// so two users can share a code and codes are trivially guessable. Use them for display and
// attribution hints only, never for authorization or as a unique key.
package referral

import (
	"strconv"
	"strings"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Codec turns a user id into a referral code.
type Codec interface {
	Code(userID string) string
}

type codec struct {
	hasher Hasher
}

// NewCodec returns a Codec backed by h. A nil hasher uses PolynomialHash31.
func NewCodec(h Hasher) Codec {
	if h == nil {
		h = PolynomialHash31{}
	}
	return &codec{hasher: h}
}

// Code returns "PW" followed by up to six uppercase base-36 digits of |hash(userID)|.
// Small hashes (including the empty id) produce shorter codes.
func (c *codec) Code(userID string) string {
	// int64 so that |math.MinInt32| stays positive
	abs := int64(c.hasher.Sum32(userID))
	if abs < 0 {
		abs = -abs
	}

	body := strings.ToUpper(strconv.FormatInt(abs, codeBase))
	if len(body) > CodeBodyLength {
		body = body[:CodeBodyLength]
	}
	return CodePrefix + body
}

var defaultCodec = NewCodec(PolynomialHash31{})

// Code derives a referral code with the default hash.
func Code(userID string) string {
	return defaultCodec.Code(userID)
}

// Rewards returns the fixed referral payout.
func Rewards() domain.ReferralRewards {
	return domain.ReferralRewards{
		ReferrerPoints:  ReferrerPoints,
		RefereePoints:   RefereePoints,
		ReferrerMessage: ReferrerMessage,
		RefereeMessage:  RefereeMessage,
	}
}
