package sheet

import "context"

// Source provides the raw league sheets. Every call returns the full sheet.
type Source interface {
	FetchTeams(ctx context.Context) ([]TeamRow, error)
	FetchRoster(ctx context.Context) ([]RosterRow, error)
	FetchFixtures(ctx context.Context) ([]FixtureRow, error)
	FetchStarters(ctx context.Context) ([]StarterRow, error)
	FetchTeamSheet(ctx context.Context) (Table, error)
}
