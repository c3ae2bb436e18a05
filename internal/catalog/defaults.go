package catalog

// Profile creation defaults and stat bounds.
const (
	DefaultCoins = 200
	MaxHealth    = 100
	StressCap    = 120
)
