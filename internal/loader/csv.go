package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// CategorySeparator separates category labels in the CSV category column.
const CategorySeparator = "|"

// csvRow is one line of a transaction CSV file. Description stays nil only when
// the file has no description column; an empty cell is an empty description.
type csvRow struct {
	AmountRaw       string `csv:"amount_raw"`
	BookkeepingType string `csv:"bookkeeping_type"`
	Category        string `csv:"category"`
	Description     *string `csv:"description"`
	RecordedAtLocal string `csv:"recorded_at_local"`
}

// CSVLoader reads records from a headed CSV file.
type CSVLoader struct {
	BaseLoader
	delimiter rune
}

// NewCSVLoader creates a CSVLoader splitting fields on delimiter (',' when zero).
func NewCSVLoader(logger logging.Logger, delimiter rune) *CSVLoader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVLoader{BaseLoader: NewBaseLoader(logger), delimiter: delimiter}
}

// Load implements Loader.
func (l *CSVLoader) Load(r io.Reader) ([]models.TransactionRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.delimiter
	reader.TrimLeadingSpace = true

	var rows []csvRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, &parsererror.InvalidFormatError{
			Source:         string(CSV),
			ExpectedFormat: "CSV with header amount_raw,bookkeeping_type,category,description,recorded_at_local",
			Msg:            err.Error(),
		}
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		records = append(records, rec)
	}

	l.GetLogger().Debug("Decoded CSV rows",
		logging.F(logging.FieldLoader, string(CSV)),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

func (row csvRow) toRecord() (models.TransactionRecord, error) {
	rec := models.TransactionRecord{
		BookkeepingType: strings.TrimSpace(row.BookkeepingType),
		Description:     row.Description,
		RecordedAtLocal: strings.TrimSpace(row.RecordedAtLocal),
		Category:        splitCategories(row.Category),
	}

	if amount := strings.TrimSpace(row.AmountRaw); amount != "" {
		raw, err := parseAmountRaw(CSV, amount)
		if err != nil {
			return rec, err
		}
		rec.AmountRaw = &raw
	}
	return rec, nil
}

func splitCategories(s string) []string {
	var out []string
	for _, part := range strings.Split(s, CategorySeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
