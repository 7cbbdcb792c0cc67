package match

import "strings"

// EnglandCountry is matched exactly; "england" or "ENGLAND" do not qualify.
const EnglandCountry = "England"

// Tier is an English football pyramid bucket.
type Tier string

const (
	TierTop          Tier = "topTier"
	TierSecond       Tier = "secondTier"
	TierLowerLeagues Tier = "lowerLeagues"
	TierNonLeague    Tier = "nonLeague"
)

var tierRules = []struct {
	needle string
	tier   Tier
}{
	{needle: "premier league", tier: TierTop},
	{needle: "championship", tier: TierSecond},
	{needle: "league one", tier: TierLowerLeagues},
	{needle: "league two", tier: TierLowerLeagues},
	{needle: "national league", tier: TierNonLeague},
}

// ClassifyTier maps a league name to its tier. Cups and unknown
// competitions report false.
func ClassifyTier(league string) (Tier, bool) {
	name := strings.ToLower(league)
	for _, rule := range tierRules {
		if strings.Contains(name, rule.needle) {
			return rule.tier, true
		}
	}
	return "", false
}

// IsEnglish reports whether the match is played in England.
func (m Match) IsEnglish() bool {
	return m.Country == EnglandCountry
}
