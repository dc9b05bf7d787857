package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
	sheetmock "github.com/lepakko/Six-Kings/internal/mocks/domain/sheet"
)

func expectSheets(source *sheetmock.Source, teamsErr error) {
	source.On("FetchTeams", mock.Anything).Return([]sheet.TeamRow{{Team: "Six Kings", Points: "2"}}, teamsErr).Once()
	source.On("FetchRoster", mock.Anything).Return([]sheet.RosterRow{{Player: "Anna"}}, nil).Maybe()
	source.On("FetchFixtures", mock.Anything).Return([]sheet.FixtureRow{
		{Round: "1", Game: "1", Type: "Einzel", Player1: "Anna", Opponents: "X", ScoreHome: "3", ScoreAway: "1", Win: "1"},
	}, nil).Maybe()
	source.On("FetchStarters", mock.Anything).Return([]sheet.StarterRow{}, nil).Maybe()
	source.On("FetchTeamSheet", mock.Anything).Return(sheet.Table{Headers: []string{}, Rows: []map[string]string{}}, nil).Maybe()
}

func TestLeagueService_Refresh_LoadsEverySheetUsingMockery(t *testing.T) {
	t.Parallel()

	source := sheetmock.NewSource(t)
	expectSheets(source, nil)

	service := NewLeagueService(source, LeagueServiceConfig{})
	snapshot, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(snapshot.Standings) != 1 || snapshot.Standings[0].Team != "Six Kings" {
		t.Fatalf("unexpected standings: %+v", snapshot.Standings)
	}
	if len(snapshot.Players) != 1 || snapshot.Players[0].WinPercentage != 100 {
		t.Fatalf("unexpected players: %+v", snapshot.Players)
	}
	if len(snapshot.Matchdays) != 1 || snapshot.Matchdays[0].Games[0].Result != "3:1" {
		t.Fatalf("unexpected matchdays: %+v", snapshot.Matchdays)
	}
}

func TestLeagueService_Refresh_SourceErrorUsingMockery(t *testing.T) {
	t.Parallel()

	source := sheetmock.NewSource(t)
	upstream := errors.New("export timed out")
	expectSheets(source, upstream)

	service := NewLeagueService(source, LeagueServiceConfig{})
	_, err := service.Refresh(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error in chain, got %v", err)
	}
}
