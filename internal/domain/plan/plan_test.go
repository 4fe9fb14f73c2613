package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitsFor(t *testing.T) {
	tests := []struct {
		tier Tier
		want Limits
	}{
		{TierBasic, Limits{MaxProjects: 3, MaxArticles: 2, MaxCVs: 1, CVLanguages: 1, CustomColors: false}},
		{TierPro, Limits{MaxProjects: 15, MaxArticles: 10, MaxCVs: 5, CVLanguages: 2, CustomColors: true}},
		{TierPremium, Limits{MaxProjects: 100, MaxArticles: 50, MaxCVs: 20, CVLanguages: 3, CustomColors: true}},
		{Tier("enterprise"), Limits{MaxProjects: 3, MaxArticles: 2, MaxCVs: 1, CVLanguages: 1, CustomColors: false}},
		{Tier(""), Limits{MaxProjects: 3, MaxArticles: 2, MaxCVs: 1, CVLanguages: 1, CustomColors: false}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, LimitsFor(tc.tier), "tier %q", tc.tier)
	}
}
