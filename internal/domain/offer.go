package domain

// OfferType categorizes a personalized offer
type OfferType string

const (
	OfferTypeTimeBased   OfferType = "time_based"
	OfferTypeFrequency   OfferType = "frequency"
	OfferTypeTierUpgrade OfferType = "tier_upgrade"
	OfferTypeComeback    OfferType = "comeback"
)

// Offer is a promotional offer generated from profile signals.
// Discount is a percentage and is 0 for offers that are not percent-off.
type Offer struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Discount    int       `json:"discount"`
	ExpiresIn   string    `json:"expiresIn"`
	Type        OfferType `json:"type"`
}
