package fixture

import (
	"strings"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

const (
	TypeDoubles = "Doppel"
	TypeSingles = "Einzel"

	opponentSeparator = "&"
	resultSeparator   = ":"
)

// Fixture is one game of a matchday.
type Fixture struct {
	ID        string
	Type      string
	Players   []string
	Opponents []string
	Result    string
}

// FromRow builds a fixture from a sheet row. Rows without a game id or type
// carry no game (award-only or header rows) and report false.
func FromRow(row sheet.FixtureRow) (Fixture, bool) {
	id := sheet.Text(row.Game)
	gameType := sheet.Text(row.Type)
	if id == "" || gameType == "" {
		return Fixture{}, false
	}

	return Fixture{
		ID:        id,
		Type:      gameType,
		Players:   row.HomePlayers(),
		Opponents: SplitOpponents(row.Opponents),
		Result:    FormatResult(row.ScoreHome, row.ScoreAway),
	}, true
}

// SplitOpponents splits a joined opponent cell like "C & D".
func SplitOpponents(raw string) []string {
	parts := strings.Split(raw, opponentSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// FormatResult renders the score as home:away, with blank sides as 0.
func FormatResult(home, away string) string {
	return scoreOrZero(home) + resultSeparator + scoreOrZero(away)
}

func scoreOrZero(raw string) string {
	if v := sheet.Text(raw); v != "" {
		return v
	}
	return "0"
}

// Scores parses the result string back into numbers.
func (f Fixture) Scores() (home, away int) {
	parts := strings.SplitN(f.Result, resultSeparator, 2)
	home = sheet.Int(parts[0])
	if len(parts) == 2 {
		away = sheet.Int(parts[1])
	}
	return home, away
}

// HomeWon reports whether the home side scored more than the opponents.
func (f Fixture) HomeWon() bool {
	home, away := f.Scores()
	return home > away
}

func (f Fixture) IsDoubles() bool {
	return strings.EqualFold(f.Type, TypeDoubles)
}
