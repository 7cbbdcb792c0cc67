package match

import "strings"

// Match is one fixture as it appears in the source match lists.
type Match struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	League   string `json:"league"`
	Venue    string `json:"venue,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
}

// List is the top-level match-list document. Matches must be present,
// an empty array is accepted.
type List struct {
	LastUpdated string  `json:"lastUpdated,omitempty"`
	Source      string  `json:"source,omitempty"`
	Matches     []Match `json:"matches" validate:"required"`
}

func (m Match) Label() string {
	return strings.TrimSpace(m.HomeTeam) + " vs " + strings.TrimSpace(m.AwayTeam)
}
