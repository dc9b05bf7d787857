package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/lepakko/Six-Kings/internal/domain/leaguestanding"
	"github.com/lepakko/Six-Kings/internal/domain/matchday"
	"github.com/lepakko/Six-Kings/internal/domain/playerstats"
	"github.com/lepakko/Six-Kings/internal/domain/sheet"
	"github.com/lepakko/Six-Kings/internal/platform/cache"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
)

// Snapshot is every derived league view built from one read of the sheets.
// A snapshot is never mutated after it is built.
type Snapshot struct {
	Standings []leaguestanding.Standing
	Players   []playerstats.Record
	Matchdays []matchday.Matchday
	Team      sheet.Table
	LoadedAt  time.Time
}

type LeagueServiceConfig struct {
	CacheTTL time.Duration
	Logger   *logging.Logger
}

// LeagueService loads the league sheets and serves the derived views from a
// cached snapshot.
type LeagueService struct {
	source sheet.Source
	store  *cache.Store[Snapshot]
	logger *logging.Logger
	now    func() time.Time
}

func NewLeagueService(source sheet.Source, cfg LeagueServiceConfig) *LeagueService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	s := &LeagueService{
		source: source,
		logger: logger,
		now:    time.Now,
	}
	s.store = cache.NewStore(cfg.CacheTTL, s.load)
	return s
}

// Refresh reloads every sheet and replaces the snapshot. On failure the
// previous snapshot stays in place.
func (s *LeagueService) Refresh(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Refresh")
	defer span.End()

	snapshot, err := s.store.Refresh(ctx)
	if err != nil {
		return Snapshot{}, dependencyError(err)
	}
	return snapshot, nil
}

// Snapshot returns the cached snapshot, loading it on first use or after the
// cache ttl. A stale snapshot is served when a reload fails.
func (s *LeagueService) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Snapshot")
	defer span.End()

	snapshot, err := s.store.Get(ctx)
	if err == nil {
		return snapshot, nil
	}
	if !snapshot.LoadedAt.IsZero() {
		s.logger.WarnContext(ctx, "serving stale league snapshot", "loaded_at", snapshot.LoadedAt, "error", err)
		return snapshot, nil
	}
	return Snapshot{}, dependencyError(err)
}

func (s *LeagueService) Standings(ctx context.Context) ([]leaguestanding.Standing, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Standings, nil
}

func (s *LeagueService) PlayerStats(ctx context.Context) ([]playerstats.Record, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Players, nil
}

func (s *LeagueService) Matchdays(ctx context.Context) ([]matchday.Matchday, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Matchdays, nil
}

func (s *LeagueService) Matchday(ctx context.Context, id int) (matchday.Matchday, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return matchday.Matchday{}, err
	}

	md, ok := matchday.Find(snapshot.Matchdays, id)
	if !ok {
		return matchday.Matchday{}, fmt.Errorf("%w: matchday=%d", ErrNotFound, id)
	}
	return md, nil
}

// DefaultMatchday returns the first matchday, the one shown when no round is
// selected.
func (s *LeagueService) DefaultMatchday(ctx context.Context) (matchday.Matchday, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return matchday.Matchday{}, err
	}
	if len(snapshot.Matchdays) == 0 {
		return matchday.Matchday{}, fmt.Errorf("%w: no matchdays recorded", ErrNotFound)
	}
	return snapshot.Matchdays[0], nil
}

func (s *LeagueService) MatchdayBlocks(ctx context.Context, id int) ([]matchday.Block, error) {
	md, err := s.Matchday(ctx, id)
	if err != nil {
		return nil, err
	}
	return matchday.Blocks(md.Games), nil
}

func (s *LeagueService) TeamSheet(ctx context.Context) (sheet.Table, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return sheet.Table{}, err
	}
	return snapshot.Team, nil
}

func (s *LeagueService) load(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.load")
	defer span.End()

	if s.source == nil {
		return Snapshot{}, fmt.Errorf("%w: sheet source is not configured", ErrDependencyUnavailable)
	}

	start := s.now()
	var (
		teams    []sheet.TeamRow
		roster   []sheet.RosterRow
		fixtures []sheet.FixtureRow
		starters []sheet.StarterRow
		team     sheet.Table
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		teams, err = s.source.FetchTeams(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		roster, err = s.source.FetchRoster(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		fixtures, err = s.source.FetchFixtures(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		starters, err = s.source.FetchStarters(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		team, err = s.source.FetchTeamSheet(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "load league sheets failed", "error", err)
		return Snapshot{}, fmt.Errorf("load league sheets: %w", err)
	}

	snapshot := Snapshot{
		Standings: leaguestanding.Build(teams),
		Players:   playerstats.Aggregate(roster, fixtures, starters),
		Matchdays: matchday.Group(fixtures, starters),
		Team:      team,
		LoadedAt:  s.now(),
	}

	s.logger.InfoContext(ctx, "league snapshot loaded",
		"teams", len(snapshot.Standings),
		"players", len(snapshot.Players),
		"matchdays", len(snapshot.Matchdays),
		"fixture_rows", len(fixtures),
		"duration", snapshot.LoadedAt.Sub(start),
	)
	return snapshot, nil
}

func dependencyError(err error) error {
	if errors.Is(err, ErrDependencyUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
}
