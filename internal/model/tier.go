package model

// Tier is the star level of a connect or column bet: how many numbers must
// match together for one touch to pay.
type Tier int

const (
	Tier2 Tier = 2
	Tier3 Tier = 3
	Tier4 Tier = 4
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{Tier2, Tier3, Tier4}

func (t Tier) Valid() bool {
	return t == Tier2 || t == Tier3 || t == Tier4
}
