package matchday

import (
	"sort"
	"strconv"

	"github.com/lepakko/Six-Kings/internal/domain/fixture"
	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

// cursor carries the sparse round header columns across the row scan.
type cursor struct {
	round        string
	date         string
	opponentTeam string
}

// advance returns the cursor for row. A non-blank round resets all three
// header values from the row itself, blanks included.
func (c cursor) advance(row sheet.FixtureRow) cursor {
	round := sheet.Text(row.Round)
	if round == "" {
		return c
	}
	return cursor{
		round:        round,
		date:         sheet.Text(row.Date),
		opponentTeam: sheet.Text(row.OpponentTeam),
	}
}

// Group partitions the fixture rows into rounds and attaches the starter
// draws. Starter rows for rounds without fixture rows are dropped.
func Group(fixtures []sheet.FixtureRow, starters []sheet.StarterRow) []Matchday {
	byID := make(map[int]*Matchday)

	var cur cursor
	for _, row := range fixtures {
		cur = cur.advance(row)
		if cur.round == "" {
			continue
		}

		id := sheet.Int(cur.round)
		md, ok := byID[id]
		if !ok {
			md = newMatchday(id, cur)
			byID[id] = md
		}

		if game, ok := fixture.FromRow(row); ok {
			md.Games = append(md.Games, game)
		}
		md.Awards.collect(row)
	}

	for _, row := range starters {
		if sheet.IsBlank(row.Round) {
			continue
		}
		md, ok := byID[sheet.Int(row.Round)]
		if !ok {
			continue
		}
		md.Awards.Starters = append(md.Awards.Starters, row.Starters()...)
	}

	out := make([]Matchday, 0, len(byID))
	for _, md := range byID {
		out = append(out, *md)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func newMatchday(id int, cur cursor) *Matchday {
	md := &Matchday{
		ID:           id,
		Name:         namePrefix + strconv.Itoa(id),
		Date:         cur.date,
		OpponentTeam: cur.opponentTeam,
		Games:        []fixture.Fixture{},
		Awards: Awards{
			Highscore:  []Award{},
			Lowscore:   []Award{},
			Highfinish: []Award{},
			Shortgame:  []Award{},
			Starters:   []string{},
		},
	}
	if md.Date == "" {
		md.Date = UnknownDate
	}
	if md.OpponentTeam == "" {
		md.OpponentTeam = UnknownOpponentTeam
	}
	return md
}

func (a *Awards) collect(row sheet.FixtureRow) {
	player := sheet.Text(row.Player1)
	a.Highscore = appendAward(a.Highscore, player, row.Highscore)
	a.Lowscore = appendAward(a.Lowscore, player, row.Lowscore)
	a.Highfinish = appendAward(a.Highfinish, player, row.Highfinish)
	a.Shortgame = appendAward(a.Shortgame, player, row.Shortgame)
}

func appendAward(awards []Award, player, raw string) []Award {
	if sheet.IsBlank(raw) {
		return awards
	}
	return append(awards, Award{Player: player, Score: sheet.Int(raw)})
}
