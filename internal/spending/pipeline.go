package spending

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"
)

// Options selects what the pipeline keeps and how it groups.
type Options struct {
	BookkeepingType string
	Window          dateutils.DateWindow
	Location        *time.Location
	GroupBy         models.GroupingMode

	// Category, when set, restricts the summary to records with this primary category.
	Category string

	// SkipMalformed drops records that would abort the run and logs each one instead.
	SkipMalformed bool
}

// Validate checks the options before any record is read.
func (o Options) Validate() error {
	if strings.TrimSpace(o.BookkeepingType) == "" {
		return &parsererror.ValidationError{Field: "bookkeeping_type", Reason: "must not be empty"}
	}
	if err := o.Window.Validate(); err != nil {
		return &parsererror.ValidationError{Field: "window", Reason: err.Error()}
	}
	if !o.GroupBy.Valid() {
		return &parsererror.ValidationError{Field: "group_by", Reason: fmt.Sprintf("unsupported mode %s", o.GroupBy)}
	}
	return nil
}

// Result is the outcome of one pipeline run.
type Result struct {
	Totals   *models.SpendingSummary
	Ranked   []models.RankedEntry
	Input    int
	Retained int
	Skipped  int
}

// Pipeline runs type filter, date filter, optional category filter, aggregation
// and ranking over one in-memory record set.
type Pipeline struct {
	logger     logging.Logger
	aggregator *Aggregator
}

// NewPipeline creates a Pipeline logging to logger.
func NewPipeline(logger logging.Logger) *Pipeline {
	return &Pipeline{
		logger:     logger,
		aggregator: NewAggregator(logger),
	}
}

// Run summarises records. The first malformed record aborts the run unless
// opts.SkipMalformed is set; error indices are positions in records. No
// matching record is not an error: the result is empty and a warning is logged.
func (p *Pipeline) Run(records []models.TransactionRecord, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p.logger.Info("Running spending summary",
		logging.F(logging.FieldInputCount, len(records)),
		logging.F(logging.FieldBookkeepingType, models.NormalizeBookkeepingType(opts.BookkeepingType)),
		logging.F(logging.FieldWindow, opts.Window.String()),
		logging.F(logging.FieldGroupBy, opts.GroupBy.String()),
		logging.F(logging.FieldCategory, opts.Category))

	result := &Result{Input: len(records)}

	items := positionsOf(records)
	if opts.SkipMalformed {
		items = p.dropMalformed(items, opts)
		result.Skipped = len(records) - len(items)
	}

	kept, err := filterByBookkeepingType(items, opts.BookkeepingType)
	if err != nil {
		return nil, fmt.Errorf("filtering by bookkeeping type: %w", err)
	}

	kept, err = filterByDateWindow(kept, opts.Window, opts.Location)
	if err != nil {
		return nil, fmt.Errorf("filtering by date window: %w", err)
	}

	if opts.Category != "" {
		kept, err = filterByCategory(kept, opts.Category)
		if err != nil {
			return nil, fmt.Errorf("filtering by category: %w", err)
		}
	}

	result.Retained = len(kept)
	if len(kept) == 0 {
		p.logger.Warn("No records matched the filters",
			logging.F(logging.FieldCount, 0),
			logging.F(logging.FieldWindow, opts.Window.String()))
	}

	summary, err := p.aggregator.aggregate(kept, opts.GroupBy)
	if err != nil {
		return nil, fmt.Errorf("aggregating: %w", err)
	}

	result.Totals = summary
	result.Ranked = Rank(summary)
	return result, nil
}

func (p *Pipeline) dropMalformed(items []positioned, opts Options) []positioned {
	valid := make([]positioned, 0, len(items))
	for _, item := range items {
		if err := ValidateRecord(item.index, item.record, opts); err != nil {
			p.logger.WithError(err).Warn("Skipping malformed record",
				logging.F(logging.FieldRecordIndex, item.index))
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// ValidateRecord reports the first field of rec that a run with opts would reject.
func ValidateRecord(index int, rec models.TransactionRecord, opts Options) error {
	if _, ok := rec.NormalizedType(); !ok {
		return &parsererror.MissingFieldError{Index: index, Field: parsererror.FieldBookkeepingType}
	}
	if !rec.HasAmount() {
		return &parsererror.MissingFieldError{Index: index, Field: parsererror.FieldAmountRaw}
	}
	if _, ok := opts.GroupBy.KeyOf(rec); !ok {
		return &parsererror.MissingFieldError{Index: index, Field: opts.GroupBy.KeyField()}
	}
	if opts.Category != "" {
		if _, ok := rec.PrimaryCategory(); !ok {
			return &parsererror.MissingFieldError{Index: index, Field: parsererror.FieldCategory}
		}
	}
	if _, err := dateutils.ParseTimestamp(rec.RecordedAtLocal, opts.Location); err != nil {
		return &parsererror.MalformedTimestampError{Index: index, Value: rec.RecordedAtLocal, Err: err}
	}
	return nil
}
