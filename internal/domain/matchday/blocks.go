package matchday

import (
	"strconv"

	"github.com/lepakko/Six-Kings/internal/domain/fixture"
)

const (
	OpeningBlockTitle = "Doppel"
	openingBlockSize  = 2
	blockSize         = 4
)

// Game is a fixture with its 1-based position within the matchday.
type Game struct {
	Number int
	fixture.Fixture
}

// Block is a display group of games.
type Block struct {
	Title string
	Games []Game
}

// Blocks splits a round's games into the opening doubles pair followed by
// numbered blocks of four. The last block may be short.
func Blocks(games []fixture.Fixture) []Block {
	out := make([]Block, 0, 1+len(games)/blockSize)
	if len(games) >= openingBlockSize {
		out = append(out, Block{
			Title: OpeningBlockTitle,
			Games: numbered(games, 0, openingBlockSize),
		})
	}

	for start := openingBlockSize; start < len(games); start += blockSize {
		end := min(start+blockSize, len(games))
		out = append(out, Block{
			Title: "Block " + strconv.Itoa(start/blockSize+1),
			Games: numbered(games, start, end),
		})
	}

	return out
}

func numbered(games []fixture.Fixture, start, end int) []Game {
	out := make([]Game, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, Game{Number: i + 1, Fixture: games[i]})
	}
	return out
}
