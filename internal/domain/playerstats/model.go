package playerstats

import "strconv"

// Stat is a finalized superlative. Valid is false when the player never
// achieved it, which is distinct from achieving a zero.
type Stat struct {
	Value int
	Valid bool
}

func (s Stat) String() string {
	if !s.Valid {
		return "-"
	}
	return strconv.Itoa(s.Value)
}

// Record is one player's finalized career line. Name is the join key across
// the roster, fixture and starter sheets.
type Record struct {
	Name           string
	Appearances    int
	GamesPlayed    int
	Wins           int
	Losses         int
	WinPercentage  int
	SetsFor        int
	SetsAgainst    int
	SetsDifference int
	Highscore      Stat
	Lowscore       Stat
	Highfinish     Stat
	Shortgame      Stat
	Starter        Stat
}
