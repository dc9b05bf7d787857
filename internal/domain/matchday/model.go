package matchday

import "github.com/lepakko/Six-Kings/internal/domain/fixture"

const (
	UnknownDate         = "Unbekanntes Datum"
	UnknownOpponentTeam = "Kein Gegnerteam"
	namePrefix          = "Spieltag "
)

// Award is one per-round superlative entry. Ties produce several entries.
type Award struct {
	Player string
	Score  int
}

type Awards struct {
	Highscore  []Award
	Lowscore   []Award
	Highfinish []Award
	Shortgame  []Award
	Starters   []string
}

// Matchday is one round against one opponent team.
type Matchday struct {
	ID           int
	Name         string
	Date         string
	OpponentTeam string
	Games        []fixture.Fixture
	Awards       Awards
}

// Find returns the matchday with the given round id.
func Find(matchdays []Matchday, id int) (Matchday, bool) {
	for _, md := range matchdays {
		if md.ID == id {
			return md, true
		}
	}
	return Matchday{}, false
}
