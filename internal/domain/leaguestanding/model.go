package leaguestanding

// Standing represents a league table row for one team.
type Standing struct {
	Position    int
	Team        string
	Played      int
	Won         int
	Lost        int
	Points      int
	SetsFor     int
	SetsAgainst int
	LegsFor     int
	LegsAgainst int
}

func (s Standing) SetDifference() int {
	return s.SetsFor - s.SetsAgainst
}

func (s Standing) LegDifference() int {
	return s.LegsFor - s.LegsAgainst
}
