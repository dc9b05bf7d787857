package sheet

// TeamRow is one team's season totals from the league sheet.
type TeamRow struct {
	Team        string `mapstructure:"Mannschaft"`
	Played      string `mapstructure:"Spiele"`
	Won         string `mapstructure:"Siege"`
	Lost        string `mapstructure:"Niederlagen"`
	Points      string `mapstructure:"Punkte"`
	SetsFor     string `mapstructure:"Sets +"`
	SetsAgainst string `mapstructure:"Sets -"`
	LegsFor     string `mapstructure:"Legs +"`
	LegsAgainst string `mapstructure:"Legs -"`
}

// RosterRow is one entry of the player list. Other columns are ignored.
type RosterRow struct {
	Player string `mapstructure:"Spieler"`
}

// FixtureRow is one game row of a matchday sheet. Round, Date and OpponentTeam
// are sparse: they are only filled on the first row of a round.
type FixtureRow struct {
	Round        string `mapstructure:"Spieltag"`
	Date         string `mapstructure:"Datum"`
	OpponentTeam string `mapstructure:"Gegnerteam"`
	Game         string `mapstructure:"Spiel"`
	Type         string `mapstructure:"Typ"`
	Player1      string `mapstructure:"Spieler 1"`
	Player2      string `mapstructure:"Spieler 2"`
	Opponents    string `mapstructure:"Gegner"`
	ScoreHome    string `mapstructure:"Ergebnis +"`
	ScoreAway    string `mapstructure:"Ergebnis -"`
	Win          string `mapstructure:"Win"`
	Lose         string `mapstructure:"Lose"`
	SetsFor      string `mapstructure:"Sets +"`
	SetsAgainst  string `mapstructure:"Sets -"`
	Highscore    string `mapstructure:"Highscore"`
	Lowscore     string `mapstructure:"Lowscore"`
	Highfinish   string `mapstructure:"Highfinish"`
	Shortgame    string `mapstructure:"Shortgame"`
}

// HomePlayers returns the non-blank home player slots in slot order.
func (r FixtureRow) HomePlayers() []string {
	out := make([]string, 0, 2)
	for _, name := range []string{r.Player1, r.Player2} {
		if name = Text(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// StarterRow records which players were drawn to start a round.
type StarterRow struct {
	Round    string `mapstructure:"Spieltag"`
	Starter1 string `mapstructure:"Starter 1"`
	Starter2 string `mapstructure:"Starter 2"`
}

// Starters returns the non-blank starter slots in slot order.
func (r StarterRow) Starters() []string {
	out := make([]string, 0, 2)
	for _, name := range []string{r.Starter1, r.Starter2} {
		if name = Text(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Table is a sheet kept in its original shape: ordered headers and one
// header->cell map per row.
type Table struct {
	Headers []string
	Rows    []map[string]string
}
