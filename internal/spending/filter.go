// Package spending implements the spending summary pipeline: bookkeeping type
// and date filters, per-key aggregation and ranking.
package spending

import (
	"time"

	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"
)

// positioned is a record together with its position in the pipeline input, so
// errors raised by later stages still name the record the caller handed in.
type positioned struct {
	index  int
	record models.TransactionRecord
}

func positionsOf(records []models.TransactionRecord) []positioned {
	out := make([]positioned, len(records))
	for i, rec := range records {
		out[i] = positioned{index: i, record: rec}
	}
	return out
}

func recordsOf(items []positioned) []models.TransactionRecord {
	out := make([]models.TransactionRecord, len(items))
	for i, item := range items {
		out[i] = item.record
	}
	return out
}

// FilterByBookkeepingType keeps the records whose bookkeeping type equals typ,
// ignoring case. Order is preserved.
func FilterByBookkeepingType(records []models.TransactionRecord, typ string) ([]models.TransactionRecord, error) {
	kept, err := filterByBookkeepingType(positionsOf(records), typ)
	if err != nil {
		return nil, err
	}
	return recordsOf(kept), nil
}

func filterByBookkeepingType(items []positioned, typ string) ([]positioned, error) {
	want := models.NormalizeBookkeepingType(typ)

	kept := make([]positioned, 0, len(items))
	for _, item := range items {
		got, ok := item.record.NormalizedType()
		if !ok {
			return nil, &parsererror.MissingFieldError{Index: item.index, Field: parsererror.FieldBookkeepingType}
		}
		if got == want {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// FilterByDateWindow keeps the records recorded inside window, bounds included.
// Timestamps without an offset are read in loc. Order is preserved.
func FilterByDateWindow(records []models.TransactionRecord, window dateutils.DateWindow, loc *time.Location) ([]models.TransactionRecord, error) {
	kept, err := filterByDateWindow(positionsOf(records), window, loc)
	if err != nil {
		return nil, err
	}
	return recordsOf(kept), nil
}

func filterByDateWindow(items []positioned, window dateutils.DateWindow, loc *time.Location) ([]positioned, error) {
	kept := make([]positioned, 0, len(items))
	for _, item := range items {
		value := item.record.RecordedAtLocal
		recordedAt, err := dateutils.ParseTimestamp(value, loc)
		if err != nil {
			return nil, &parsererror.MalformedTimestampError{Index: item.index, Value: value, Err: err}
		}
		if window.Contains(recordedAt) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// FilterByCategory keeps the records whose primary category is exactly category.
func FilterByCategory(records []models.TransactionRecord, category string) ([]models.TransactionRecord, error) {
	kept, err := filterByCategory(positionsOf(records), category)
	if err != nil {
		return nil, err
	}
	return recordsOf(kept), nil
}

func filterByCategory(items []positioned, category string) ([]positioned, error) {
	kept := make([]positioned, 0, len(items))
	for _, item := range items {
		primary, ok := item.record.PrimaryCategory()
		if !ok {
			return nil, &parsererror.MissingFieldError{Index: item.index, Field: parsererror.FieldCategory}
		}
		if primary == category {
			kept = append(kept, item)
		}
	}
	return kept, nil
}
