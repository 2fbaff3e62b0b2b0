package spending

import (
	"sort"

	"fjacquet/spend-summary/internal/models"
)

// Rank orders the summary by total, largest first. Equal totals keep the order
// in which their keys were first aggregated.
func Rank(summary *models.SpendingSummary) []models.RankedEntry {
	if summary == nil {
		return []models.RankedEntry{}
	}

	ranked := summary.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})
	return ranked
}
