package playerstats

import (
	"math"
	"sort"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

type tally struct {
	name        string
	appearances int
	wins        int
	losses      int
	setsFor     int
	setsAgainst int
	highscore   []int
	lowscore    []int
	highfinish  []int
	shortgame   []int
	starts      int
}

type ledger struct {
	byName map[string]*tally
	order  []string
}

func newLedger(capacity int) *ledger {
	return &ledger{
		byName: make(map[string]*tally, capacity),
		order:  make([]string, 0, capacity),
	}
}

func (l *ledger) get(name string) *tally {
	if t, ok := l.byName[name]; ok {
		return t
	}
	t := &tally{name: name}
	l.byName[name] = t
	l.order = append(l.order, name)
	return t
}

// Aggregate builds the ranked player table from the roster, the fixture rows
// and the starter draws. Players missing from the roster are still reported.
func Aggregate(roster []sheet.RosterRow, fixtures []sheet.FixtureRow, starters []sheet.StarterRow) []Record {
	l := newLedger(len(roster))

	for _, row := range roster {
		if name := sheet.Text(row.Player); name != "" {
			l.get(name)
		}
	}

	for _, row := range fixtures {
		for _, name := range row.HomePlayers() {
			t := l.get(name)
			t.appearances++
			t.wins += sheet.Int(row.Win)
			t.losses += sheet.Int(row.Lose)
			t.setsFor += sheet.Int(row.SetsFor)
			t.setsAgainst += sheet.Int(row.SetsAgainst)
		}

		// Awards are recorded once per row and belong to the first slot.
		first := sheet.Text(row.Player1)
		if first == "" {
			continue
		}
		t := l.get(first)
		t.highscore = appendIfSet(t.highscore, row.Highscore)
		t.lowscore = appendIfSet(t.lowscore, row.Lowscore)
		t.highfinish = appendIfSet(t.highfinish, row.Highfinish)
		t.shortgame = appendIfSet(t.shortgame, row.Shortgame)
	}

	for _, row := range starters {
		for _, name := range row.Starters() {
			l.get(name).starts++
		}
	}

	out := make([]Record, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.byName[name].finalize())
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinPercentage != out[j].WinPercentage {
			return out[i].WinPercentage > out[j].WinPercentage
		}
		return out[i].Wins > out[j].Wins
	})

	return out
}

func appendIfSet(events []int, raw string) []int {
	if sheet.IsBlank(raw) {
		return events
	}
	return append(events, sheet.Int(raw))
}

func (t *tally) finalize() Record {
	games := t.wins + t.losses
	return Record{
		Name:           t.name,
		Appearances:    t.appearances,
		GamesPlayed:    games,
		Wins:           t.wins,
		Losses:         t.losses,
		WinPercentage:  winPercentage(t.wins, games),
		SetsFor:        t.setsFor,
		SetsAgainst:    t.setsAgainst,
		SetsDifference: t.setsFor - t.setsAgainst,
		Highscore:      countOf(t.highscore),
		Lowscore:       countOf(t.lowscore),
		Highfinish:     maxOf(t.highfinish),
		Shortgame:      maxOf(t.shortgame),
		Starter:        Stat{Value: t.starts, Valid: t.starts > 0},
	}
}

func winPercentage(wins, games int) int {
	if games <= 0 {
		return 0
	}
	pct := int(math.Round(float64(wins) * 100 / float64(games)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func countOf(events []int) Stat {
	if len(events) == 0 {
		return Stat{}
	}
	return Stat{Value: len(events), Valid: true}
}

func maxOf(events []int) Stat {
	if len(events) == 0 {
		return Stat{}
	}
	best := events[0]
	for _, v := range events[1:] {
		if v > best {
			best = v
		}
	}
	return Stat{Value: best, Valid: true}
}
