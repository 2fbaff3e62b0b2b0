package spending

import (
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"
)

// Aggregate sums the converted amount of every record per grouping key.
//
// The running total of a key is re-rounded to four significant digits after
// every addition, so the result depends on record order: [1000, 0.6, 0.6]
// sums to 1002 while [0.6, 0.6, 1000] sums to 1001.
func Aggregate(records []models.TransactionRecord, mode models.GroupingMode) (*models.SpendingSummary, error) {
	return aggregate(positionsOf(records), mode)
}

func aggregate(items []positioned, mode models.GroupingMode) (*models.SpendingSummary, error) {
	summary := models.NewSpendingSummary()

	for _, item := range items {
		key, ok := mode.KeyOf(item.record)
		if !ok {
			return nil, &parsererror.MissingFieldError{Index: item.index, Field: mode.KeyField()}
		}
		amount, ok := models.AmountOf(item.record)
		if !ok {
			return nil, &parsererror.MissingFieldError{Index: item.index, Field: parsererror.FieldAmountRaw}
		}

		total, _ := summary.Get(key)
		summary.Set(key, models.Round4(total.Add(amount)))
	}

	return summary, nil
}

// Aggregator wraps Aggregate with logging
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate groups records by mode and logs the resulting per-key totals at debug level.
func (a *Aggregator) Aggregate(records []models.TransactionRecord, mode models.GroupingMode) (*models.SpendingSummary, error) {
	return a.aggregate(positionsOf(records), mode)
}

func (a *Aggregator) aggregate(items []positioned, mode models.GroupingMode) (*models.SpendingSummary, error) {
	summary, err := aggregate(items, mode)
	if err != nil {
		a.logger.WithError(err).Error("Aggregation failed",
			logging.F(logging.FieldGroupBy, mode.String()))
		return nil, err
	}

	for _, entry := range summary.Entries() {
		a.logger.Debug("Aggregated key",
			logging.F(logging.FieldKey, entry.Key),
			logging.F(logging.FieldTotal, entry.Total.String()))
	}
	a.logger.Info("Aggregated records",
		logging.F(logging.FieldGroupBy, mode.String()),
		logging.F(logging.FieldInputCount, len(items)),
		logging.F(logging.FieldCount, summary.Len()))

	return summary, nil
}
