package memory

import "github.com/riskibarqy/matchday/internal/domain/match"

// SeedMatches is a small fixture list covering every English tier, a cup
// tie and a few continental matches.
func SeedMatches() []match.Match {
	return []match.Match{
		{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Date: "2026-10-24", Time: "17:30", League: "Premier League", Venue: "Emirates Stadium", City: "London", Country: "England"},
		{HomeTeam: "Brentford", AwayTeam: "Fulham", Date: "2026-10-24", Time: "15:00", League: "Premier League", Venue: "Gtech Community Stadium", City: "London", Country: "England"},
		{HomeTeam: "Leeds United", AwayTeam: "Sunderland", Date: "2026-10-24", Time: "15:00", League: "Championship", Country: "England"},
		{HomeTeam: "Wrexham", AwayTeam: "Bolton Wanderers", Date: "2026-10-24", Time: "15:00", League: "League One", Venue: "Racecourse Ground", City: "Wrexham", Country: "England"},
		{HomeTeam: "Notts County", AwayTeam: "MK Dons", Date: "2026-10-25", Time: "15:00", League: "League Two", Country: "England"},
		{HomeTeam: "York City", AwayTeam: "Hartlepool United", Date: "2026-10-25", Time: "15:00", League: "National League", Country: "England"},
		{HomeTeam: "Manchester City", AwayTeam: "Liverpool", Date: "2026-10-25", Time: "16:30", League: "Premier League", Venue: "Etihad Stadium", City: "Manchester", Country: "England"},
		{HomeTeam: "Aston Villa", AwayTeam: "Newcastle United", Date: "2026-10-28", Time: "19:45", League: "EFL Cup", Country: "England"},
		{HomeTeam: "Real Madrid", AwayTeam: "Barcelona", Date: "2026-10-25", Time: "21:00", League: "La Liga", Venue: "Santiago Bernabeu", City: "Madrid", Country: "Spain"},
		{HomeTeam: "Bayern Munich", AwayTeam: "Borussia Dortmund", Date: "2026-10-24", Time: "18:30", League: "Bundesliga", City: "Munich", Country: "Germany"},
		{HomeTeam: "Celtic", AwayTeam: "Rangers", Date: "2026-10-25", Time: "12:00", League: "Scottish Premiership", Country: "Scotland"},
		{HomeTeam: "Persija Jakarta", AwayTeam: "Persib Bandung", Date: "2026-10-26", Time: "19:00", League: "Liga 1 Indonesia", Country: "Indonesia"},
	}
}
