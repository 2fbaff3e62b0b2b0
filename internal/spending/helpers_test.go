package spending

import (
	"time"

	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/models"
)

func rec(raw int64, typ, desc, when string, categories ...string) models.TransactionRecord {
	return models.NewTransactionRecord(raw, typ, desc, when, categories...)
}

// undescribed builds a record whose description is absent.
func undescribed(raw int64, typ, when string, categories ...string) models.TransactionRecord {
	r := rec(raw, typ, "", when, categories...)
	r.Description = nil
	return r
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mayWindow() dateutils.DateWindow {
	return dateutils.DateWindow{Start: day(2017, 5, 1), End: day(2017, 5, 17)}
}

func descriptions(records []models.TransactionRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		desc, _ := r.DescriptionText()
		out = append(out, desc)
	}
	return out
}
