package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/lepakko/Six-Kings/internal/domain/leaguestanding"
	"github.com/lepakko/Six-Kings/internal/domain/matchday"
	"github.com/lepakko/Six-Kings/internal/domain/playerstats"
)

func renderStandings(w io.Writer, standings []leaguestanding.Standing) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Team", "Sp", "S", "N", "Pkt", "Sets", "+/-", "Legs", "+/-")

	for _, s := range standings {
		if err := table.Append([]string{
			strconv.Itoa(s.Position),
			s.Team,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.Points),
			fmt.Sprintf("%d:%d", s.SetsFor, s.SetsAgainst),
			signed(s.SetDifference()),
			fmt.Sprintf("%d:%d", s.LegsFor, s.LegsAgainst),
			signed(s.LegDifference()),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderPlayers(w io.Writer, records []playerstats.Record) error {
	table := tablewriter.NewWriter(w)
	table.Header("Spieler", "Sp", "S", "N", "%", "Sets", "+/-", "HS", "LS", "HF", "SG", "Starter")

	for _, r := range records {
		if err := table.Append([]string{
			r.Name,
			strconv.Itoa(r.GamesPlayed),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.WinPercentage),
			fmt.Sprintf("%d:%d", r.SetsFor, r.SetsAgainst),
			signed(r.SetsDifference),
			r.Highscore.String(),
			r.Lowscore.String(),
			r.Highfinish.String(),
			r.Shortgame.String(),
			r.Starter.String(),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderMatchday(w io.Writer, md matchday.Matchday) error {
	if _, err := fmt.Fprintf(w, "%s  %s  vs. %s\n", md.Name, md.Date, md.OpponentTeam); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Block", "Nr", "Typ", "Spieler", "Gegner", "Ergebnis")

	for _, block := range matchday.Blocks(md.Games) {
		for _, game := range block.Games {
			result := game.Result
			if game.HomeWon() {
				result += " *"
			}
			if err := table.Append([]string{
				block.Title,
				strconv.Itoa(game.Number),
				game.Type,
				strings.Join(game.Players, " / "),
				strings.Join(game.Opponents, " / "),
				result,
			}); err != nil {
				return err
			}
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(md.Awards.Starters) > 0 {
		if _, err := fmt.Fprintf(w, "Starter: %s\n", strings.Join(md.Awards.Starters, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
