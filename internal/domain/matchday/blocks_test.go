package matchday

import (
	"strconv"
	"testing"

	"github.com/lepakko/Six-Kings/internal/domain/fixture"
)

func makeGames(n int) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fixture.Fixture{ID: strconv.Itoa(i), Type: fixture.TypeSingles})
	}
	return out
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		games      int
		wantSizes  []int
		wantTitles []string
	}{
		{games: 0, wantSizes: []int{}, wantTitles: []string{}},
		{games: 1, wantSizes: []int{}, wantTitles: []string{}},
		{games: 2, wantSizes: []int{2}, wantTitles: []string{"Doppel"}},
		{games: 3, wantSizes: []int{2, 1}, wantTitles: []string{"Doppel", "Block 1"}},
		{games: 6, wantSizes: []int{2, 4}, wantTitles: []string{"Doppel", "Block 1"}},
		{games: 10, wantSizes: []int{2, 4, 4}, wantTitles: []string{"Doppel", "Block 1", "Block 2"}},
		{games: 11, wantSizes: []int{2, 4, 4, 1}, wantTitles: []string{"Doppel", "Block 1", "Block 2", "Block 3"}},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.games), func(t *testing.T) {
			blocks := Blocks(makeGames(tt.games))
			if len(blocks) != len(tt.wantSizes) {
				t.Fatalf("expected %d blocks, got %d", len(tt.wantSizes), len(blocks))
			}
			for i, block := range blocks {
				if len(block.Games) != tt.wantSizes[i] {
					t.Fatalf("block %d: expected %d games, got %d", i, tt.wantSizes[i], len(block.Games))
				}
				if block.Title != tt.wantTitles[i] {
					t.Fatalf("block %d: expected title %q, got %q", i, tt.wantTitles[i], block.Title)
				}
			}
		})
	}
}

func TestBlocks_NumbersGamesInOrder(t *testing.T) {
	blocks := Blocks(makeGames(7))
	next := 1
	for _, block := range blocks {
		for _, game := range block.Games {
			if game.Number != next || game.ID != strconv.Itoa(next) {
				t.Fatalf("expected game %d, got number=%d id=%s", next, game.Number, game.ID)
			}
			next++
		}
	}
	if next != 8 {
		t.Fatalf("expected all 7 games to be placed, placed %d", next-1)
	}
}
