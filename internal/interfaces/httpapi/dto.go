package httpapi

import (
	"strconv"
	"time"

	"github.com/lepakko/Six-Kings/internal/domain/fixture"
	"github.com/lepakko/Six-Kings/internal/domain/leaguestanding"
	"github.com/lepakko/Six-Kings/internal/domain/matchday"
	"github.com/lepakko/Six-Kings/internal/domain/playerstats"
	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

type standingDTO struct {
	Position      int    `json:"position"`
	Team          string `json:"team"`
	Played        int    `json:"played"`
	Won           int    `json:"won"`
	Lost          int    `json:"lost"`
	Points        int    `json:"points"`
	SetsFor       int    `json:"sets_for"`
	SetsAgainst   int    `json:"sets_against"`
	SetDifference int    `json:"set_difference"`
	LegsFor       int    `json:"legs_for"`
	LegsAgainst   int    `json:"legs_against"`
	LegDifference int    `json:"leg_difference"`
}

// statDTO renders a missing superlative as "-" and an achieved one as a number.
type statDTO playerstats.Stat

func (s statDTO) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte(`"-"`), nil
	}
	return strconv.AppendInt(nil, int64(s.Value), 10), nil
}

type playerDTO struct {
	Name           string  `json:"name"`
	Appearances    int     `json:"appearances"`
	GamesPlayed    int     `json:"games_played"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	WinPercentage  int     `json:"win_percentage"`
	SetsFor        int     `json:"sets_for"`
	SetsAgainst    int     `json:"sets_against"`
	SetsDifference int     `json:"sets_difference"`
	Highscore      statDTO `json:"highscore"`
	Lowscore       statDTO `json:"lowscore"`
	Highfinish     statDTO `json:"highfinish"`
	Shortgame      statDTO `json:"shortgame"`
	Starter        statDTO `json:"starter"`
}

type fixtureDTO struct {
	Number    int      `json:"number,omitempty"`
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Players   []string `json:"players"`
	Opponents []string `json:"opponents"`
	Result    string   `json:"result"`
	HomeWon   bool     `json:"home_won"`
}

type awardDTO struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

type awardsDTO struct {
	Highscore  []awardDTO `json:"highscore"`
	Lowscore   []awardDTO `json:"lowscore"`
	Highfinish []awardDTO `json:"highfinish"`
	Shortgame  []awardDTO `json:"shortgame"`
	Starters   []string   `json:"starters"`
}

type matchdayDTO struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Date         string       `json:"date"`
	OpponentTeam string       `json:"opponent_team"`
	Games        []fixtureDTO `json:"games"`
	Awards       awardsDTO    `json:"awards"`
}

type blockDTO struct {
	Title string       `json:"title"`
	Games []fixtureDTO `json:"games"`
}

type tableDTO struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

type refreshDTO struct {
	LoadedAt  time.Time `json:"loaded_at"`
	Teams     int       `json:"teams"`
	Players   int       `json:"players"`
	Matchdays int       `json:"matchdays"`
}

func standingToDTO(item leaguestanding.Standing) standingDTO {
	return standingDTO{
		Position:      item.Position,
		Team:          item.Team,
		Played:        item.Played,
		Won:           item.Won,
		Lost:          item.Lost,
		Points:        item.Points,
		SetsFor:       item.SetsFor,
		SetsAgainst:   item.SetsAgainst,
		SetDifference: item.SetDifference(),
		LegsFor:       item.LegsFor,
		LegsAgainst:   item.LegsAgainst,
		LegDifference: item.LegDifference(),
	}
}

func playerToDTO(item playerstats.Record) playerDTO {
	return playerDTO{
		Name:           item.Name,
		Appearances:    item.Appearances,
		GamesPlayed:    item.GamesPlayed,
		Wins:           item.Wins,
		Losses:         item.Losses,
		WinPercentage:  item.WinPercentage,
		SetsFor:        item.SetsFor,
		SetsAgainst:    item.SetsAgainst,
		SetsDifference: item.SetsDifference,
		Highscore:      statDTO(item.Highscore),
		Lowscore:       statDTO(item.Lowscore),
		Highfinish:     statDTO(item.Highfinish),
		Shortgame:      statDTO(item.Shortgame),
		Starter:        statDTO(item.Starter),
	}
}

func fixtureToDTO(item fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:        item.ID,
		Type:      item.Type,
		Players:   nonNil(item.Players),
		Opponents: nonNil(item.Opponents),
		Result:    item.Result,
		HomeWon:   item.HomeWon(),
	}
}

func awardsToDTO(items []matchday.Award) []awardDTO {
	out := make([]awardDTO, 0, len(items))
	for _, item := range items {
		out = append(out, awardDTO{Player: item.Player, Score: item.Score})
	}
	return out
}

func matchdayToDTO(item matchday.Matchday) matchdayDTO {
	games := make([]fixtureDTO, 0, len(item.Games))
	for _, game := range item.Games {
		games = append(games, fixtureToDTO(game))
	}

	return matchdayDTO{
		ID:           item.ID,
		Name:         item.Name,
		Date:         item.Date,
		OpponentTeam: item.OpponentTeam,
		Games:        games,
		Awards: awardsDTO{
			Highscore:  awardsToDTO(item.Awards.Highscore),
			Lowscore:   awardsToDTO(item.Awards.Lowscore),
			Highfinish: awardsToDTO(item.Awards.Highfinish),
			Shortgame:  awardsToDTO(item.Awards.Shortgame),
			Starters:   nonNil(item.Awards.Starters),
		},
	}
}

func blockToDTO(item matchday.Block) blockDTO {
	games := make([]fixtureDTO, 0, len(item.Games))
	for _, game := range item.Games {
		dto := fixtureToDTO(game.Fixture)
		dto.Number = game.Number
		games = append(games, dto)
	}
	return blockDTO{Title: item.Title, Games: games}
}

func tableToDTO(table sheet.Table) tableDTO {
	rows := table.Rows
	if rows == nil {
		rows = []map[string]string{}
	}
	return tableDTO{Headers: nonNil(table.Headers), Rows: rows}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
