package googlesheets

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

// FetchFixtures loads every configured matchday tab concurrently and returns
// their rows concatenated in ascending round order.
func (c *Client) FetchFixtures(ctx context.Context) ([]sheet.FixtureRow, error) {
	tabs := append([]MatchdayTab(nil), c.tabs.Matchdays...)
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Round < tabs[j].Round })
	if len(tabs) == 0 {
		return []sheet.FixtureRow{}, nil
	}

	pool, err := ants.NewPool(min(c.workers, len(tabs)))
	if err != nil {
		return nil, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	perTab := make([][]sheet.FixtureRow, len(tabs))
	errs := make([]error, len(tabs))

	var wg sync.WaitGroup
	for i, tab := range tabs {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			rows, err := fetchRows[sheet.FixtureRow](ctx, c, fmt.Sprintf("matchday %d", tab.Round), tab.GID)
			perTab[i] = rows
			errs[i] = err
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit matchday %d: %w", tab.Round, err)
		}
	}
	wg.Wait()

	total := 0
	for i := range tabs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		total += len(perTab[i])
	}

	out := make([]sheet.FixtureRow, 0, total)
	for _, rows := range perTab {
		out = append(out, rows...)
	}
	return out, nil
}
