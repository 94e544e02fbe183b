package points

// Wash XP awards
const (
	// BaseWashXP is awarded for every wash
	BaseWashXP = 10

	// LargeWashXPBonus is added when the wash amount reaches LargeWashAmount
	LargeWashXPBonus = 5
	LargeWashAmount  = 100

	// PremiumWashXPBonus is added on top of LargeWashXPBonus when the amount reaches PremiumWashAmount
	PremiumWashXPBonus = 10
	PremiumWashAmount  = 200

	// FirstWashTodayXPBonus is added for the first wash of the day
	FirstWashTodayXPBonus = 15
)
