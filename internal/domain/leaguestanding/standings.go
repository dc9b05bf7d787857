package leaguestanding

import (
	"sort"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
)

// Build normalizes the team totals and ranks them by points, then set
// difference, then leg difference. Fully tied teams keep their sheet order.
func Build(rows []sheet.TeamRow) []Standing {
	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, Standing{
			Team:        sheet.Text(row.Team),
			Played:      sheet.Int(row.Played),
			Won:         sheet.Int(row.Won),
			Lost:        sheet.Int(row.Lost),
			Points:      sheet.Int(row.Points),
			SetsFor:     sheet.Int(row.SetsFor),
			SetsAgainst: sheet.Int(row.SetsAgainst),
			LegsFor:     sheet.Int(row.LegsFor),
			LegsAgainst: sheet.Int(row.LegsAgainst),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return ranksAbove(out[i], out[j])
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func ranksAbove(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.SetDifference() != b.SetDifference() {
		return a.SetDifference() > b.SetDifference()
	}
	return a.LegDifference() > b.LegDifference()
}
