package plan

// Tier is a subscription level gating feature quotas.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

type Limits struct {
	MaxProjects  int
	MaxArticles  int
	MaxCVs       int
	CVLanguages  int
	CustomColors bool
}

var limitsByTier = map[Tier]Limits{
	TierBasic: {
		MaxProjects:  3,
		MaxArticles:  2,
		MaxCVs:       1,
		CVLanguages:  1,
		CustomColors: false,
	},
	TierPro: {
		MaxProjects:  15,
		MaxArticles:  10,
		MaxCVs:       5,
		CVLanguages:  2,
		CustomColors: true,
	},
	TierPremium: {
		MaxProjects:  100,
		MaxArticles:  50,
		MaxCVs:       20,
		CVLanguages:  3,
		CustomColors: true,
	},
}

// LimitsFor returns the quota table for a tier. Unknown tiers get the
// basic limits.
func LimitsFor(tier Tier) Limits {
	if l, ok := limitsByTier[tier]; ok {
		return l
	}
	return limitsByTier[TierBasic]
}
