package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/lepakko/Six-Kings/internal/domain/fixture"
	"github.com/lepakko/Six-Kings/internal/domain/leaguestanding"
	"github.com/lepakko/Six-Kings/internal/domain/matchday"
	"github.com/lepakko/Six-Kings/internal/domain/playerstats"
	"github.com/lepakko/Six-Kings/internal/domain/sheet"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
	"github.com/lepakko/Six-Kings/internal/usecase"
)

type stubLeagueService struct {
	err       error
	refreshed int
}

var stubMatchday = matchday.Matchday{
	ID:           3,
	Name:         "Spieltag 3",
	Date:         "03.10.2025",
	OpponentTeam: "Bullseyes",
	Games: []fixture.Fixture{
		{ID: "1", Type: fixture.TypeDoubles, Players: []string{"Anna", "Ben"}, Opponents: []string{"X", "Y"}, Result: "3:1"},
		{ID: "2", Type: fixture.TypeDoubles, Players: []string{"Cleo", "Dirk"}, Opponents: []string{"Z", "Q"}, Result: "0:3"},
		{ID: "3", Type: fixture.TypeSingles, Players: []string{"Anna"}, Opponents: []string{"X"}, Result: "3:2"},
	},
	Awards: matchday.Awards{
		Highscore:  []matchday.Award{{Player: "Anna", Score: 180}},
		Lowscore:   []matchday.Award{},
		Highfinish: []matchday.Award{},
		Shortgame:  []matchday.Award{},
		Starters:   []string{"Anna"},
	},
}

func (s *stubLeagueService) Refresh(context.Context) (usecase.Snapshot, error) {
	if s.err != nil {
		return usecase.Snapshot{}, s.err
	}
	s.refreshed++
	return usecase.Snapshot{
		Standings: []leaguestanding.Standing{{Position: 1, Team: "Six Kings"}},
		Matchdays: []matchday.Matchday{stubMatchday},
		LoadedAt:  time.Date(2026, 3, 7, 20, 0, 0, 0, time.UTC),
	}, nil
}

func (s *stubLeagueService) Standings(context.Context) ([]leaguestanding.Standing, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []leaguestanding.Standing{
		{Position: 1, Team: "Six Kings", Points: 6, SetsFor: 20, SetsAgainst: 12, LegsFor: 60, LegsAgainst: 40},
	}, nil
}

func (s *stubLeagueService) PlayerStats(context.Context) ([]playerstats.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []playerstats.Record{
		{Name: "Anna", Wins: 2, Losses: 1, GamesPlayed: 3, WinPercentage: 67,
			Highscore: playerstats.Stat{Value: 1, Valid: true}, Shortgame: playerstats.Stat{Value: 0, Valid: true}},
	}, nil
}

func (s *stubLeagueService) Matchdays(context.Context) ([]matchday.Matchday, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []matchday.Matchday{stubMatchday}, nil
}

func (s *stubLeagueService) Matchday(_ context.Context, id int) (matchday.Matchday, error) {
	if s.err != nil {
		return matchday.Matchday{}, s.err
	}
	if id != stubMatchday.ID {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday=%d", usecase.ErrNotFound, id)
	}
	return stubMatchday, nil
}

func (s *stubLeagueService) MatchdayBlocks(ctx context.Context, id int) ([]matchday.Block, error) {
	md, err := s.Matchday(ctx, id)
	if err != nil {
		return nil, err
	}
	return matchday.Blocks(md.Games), nil
}

func (s *stubLeagueService) TeamSheet(context.Context) (sheet.Table, error) {
	if s.err != nil {
		return sheet.Table{}, s.err
	}
	return sheet.Table{Headers: []string{"Name", "Rolle"}, Rows: []map[string]string{{"Name": "Anna", "Rolle": "Kapitän"}}}, nil
}

func serve(t *testing.T, svc LeagueService, method, path string) (int, map[string]any) {
	t.Helper()

	router := NewRouter(NewHandler(svc, logging.NewNop()), logging.NewNop(), []string{"*"})
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestHandler_ListStandings(t *testing.T) {
	code, body := serve(t, &stubLeagueService{}, http.MethodGet, "/v1/standings")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %v", body["data"])
	}
	row := data[0].(map[string]any)
	if row["team"] != "Six Kings" || row["leg_difference"] != float64(20) || row["set_difference"] != float64(8) {
		t.Fatalf("unexpected standing row: %v", row)
	}
}

func TestHandler_ListPlayers_RendersMissingStatsAsDash(t *testing.T) {
	code, body := serve(t, &stubLeagueService{}, http.MethodGet, "/v1/players")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	row := body["data"].([]any)[0].(map[string]any)
	if row["highscore"] != float64(1) {
		t.Fatalf("expected highscore=1, got %v", row["highscore"])
	}
	if row["shortgame"] != float64(0) {
		t.Fatalf("expected achieved zero shortgame, got %v", row["shortgame"])
	}
	if row["lowscore"] != "-" || row["starter"] != "-" {
		t.Fatalf("expected dash for missing stats, got lowscore=%v starter=%v", row["lowscore"], row["starter"])
	}
}

func TestHandler_GetMatchday(t *testing.T) {
	code, body := serve(t, &stubLeagueService{}, http.MethodGet, "/v1/matchdays/3")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data := body["data"].(map[string]any)
	if data["name"] != "Spieltag 3" || data["opponent_team"] != "Bullseyes" {
		t.Fatalf("unexpected matchday: %v", data)
	}
	games := data["games"].([]any)
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	if games[0].(map[string]any)["home_won"] != true || games[1].(map[string]any)["home_won"] != false {
		t.Fatalf("unexpected home_won flags: %v", games)
	}
}

func TestHandler_GetMatchday_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "unknown round", path: "/v1/matchdays/9", status: http.StatusNotFound},
		{name: "non numeric id", path: "/v1/matchdays/abc", status: http.StatusBadRequest},
		{name: "zero id", path: "/v1/matchdays/0", status: http.StatusBadRequest},
		{name: "unknown round blocks", path: "/v1/matchdays/9/blocks", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, &stubLeagueService{}, http.MethodGet, tt.path)
			if code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, code)
			}
			if _, ok := body["error"]; !ok {
				t.Fatalf("expected error envelope, got %v", body)
			}
		})
	}
}

func TestHandler_ListMatchdayBlocks(t *testing.T) {
	code, body := serve(t, &stubLeagueService{}, http.MethodGet, "/v1/matchdays/3/blocks")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	blocks := body["data"].([]any)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	second := blocks[1].(map[string]any)
	if second["title"] != "Block 1" {
		t.Fatalf("unexpected block title: %v", second["title"])
	}
	game := second["games"].([]any)[0].(map[string]any)
	if game["number"] != float64(3) {
		t.Fatalf("expected game number 3, got %v", game["number"])
	}
}

func TestHandler_GetTeamSheet(t *testing.T) {
	code, body := serve(t, &stubLeagueService{}, http.MethodGet, "/v1/team")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data := body["data"].(map[string]any)
	headers := data["headers"].([]any)
	if len(headers) != 2 || headers[1] != "Rolle" {
		t.Fatalf("unexpected headers: %v", headers)
	}
}

func TestHandler_Refresh(t *testing.T) {
	svc := &stubLeagueService{}
	code, body := serve(t, svc, http.MethodPost, "/v1/refresh")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if svc.refreshed != 1 {
		t.Fatalf("expected one refresh, got %d", svc.refreshed)
	}
	data := body["data"].(map[string]any)
	if data["matchdays"] != float64(1) || data["teams"] != float64(1) {
		t.Fatalf("unexpected refresh summary: %v", data)
	}
}

func TestHandler_DependencyUnavailable(t *testing.T) {
	svc := &stubLeagueService{err: fmt.Errorf("%w: sheet export failed", usecase.ErrDependencyUnavailable)}
	code, body := serve(t, svc, http.MethodGet, "/v1/matchdays")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	errorObj := body["error"].(map[string]any)
	if errorObj["status"] != "UNAVAILABLE" {
		t.Fatalf("unexpected error status: %v", errorObj["status"])
	}
}

func TestHandler_Healthz(t *testing.T) {
	code, body := serve(t, &stubLeagueService{}, http.MethodGet, "/healthz")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["data"].(map[string]any)["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}
}
