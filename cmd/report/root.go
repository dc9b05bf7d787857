package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lepakko/Six-Kings/internal/app"
	"github.com/lepakko/Six-Kings/internal/config"
	"github.com/lepakko/Six-Kings/internal/domain/leaguestanding"
	"github.com/lepakko/Six-Kings/internal/domain/matchday"
	"github.com/lepakko/Six-Kings/internal/domain/playerstats"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
)

// leagueReader is the slice of the league service the report needs.
type leagueReader interface {
	Standings(ctx context.Context) ([]leaguestanding.Standing, error)
	PlayerStats(ctx context.Context) ([]playerstats.Record, error)
	Matchday(ctx context.Context, id int) (matchday.Matchday, error)
	DefaultMatchday(ctx context.Context) (matchday.Matchday, error)
}

type reportOptions struct {
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}

	rootCmd := &cobra.Command{
		Use:           "report",
		Short:         "Print league tables from the league spreadsheet",
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "overall load timeout")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log sheet fetches to stderr")

	open := func() (leagueReader, *logging.Logger, error) {
		return openLeague(opts)
	}

	rootCmd.AddCommand(
		newStandingsCmd(opts, open),
		newPlayersCmd(opts, open),
		newMatchdayCmd(opts, open),
	)
	return rootCmd
}

func openLeague(opts *reportOptions) (leagueReader, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := logging.LevelWarn
	if opts.verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Options{Level: level, Format: logging.FormatConsole, Output: os.Stderr})
	logging.SetDefault(logger)

	return app.NewLeagueService(cfg, logger), logger, nil
}

type opener func() (leagueReader, *logging.Logger, error)

func newStandingsCmd(opts *reportOptions, open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the league table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, logger, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			standings, err := svc.Standings(ctx)
			if err != nil {
				return fmt.Errorf("load standings: %w", err)
			}
			return renderStandings(cmd.OutOrStdout(), standings)
		},
	}
}

func newPlayersCmd(opts *reportOptions, open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Print player statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, logger, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			records, err := svc.PlayerStats(ctx)
			if err != nil {
				return fmt.Errorf("load player stats: %w", err)
			}
			return renderPlayers(cmd.OutOrStdout(), records)
		},
	}
}

func newMatchdayCmd(opts *reportOptions, open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "matchday [id]",
		Short: "Print the games of one matchday, the first one when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  int
				err error
			)
			if len(args) == 1 {
				id, err = strconv.Atoi(args[0])
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid matchday id %q", args[0])
				}
			}

			svc, logger, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			var md matchday.Matchday
			if id == 0 {
				md, err = svc.DefaultMatchday(ctx)
			} else {
				md, err = svc.Matchday(ctx, id)
			}
			if err != nil {
				return fmt.Errorf("load matchday: %w", err)
			}
			return renderMatchday(cmd.OutOrStdout(), md)
		},
	}
}
