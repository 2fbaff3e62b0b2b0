package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/shopspring/decimal"
)

const snippetLength = 64

// jsonDocument mirrors the transaction export consumed by the JSON loader.
type jsonDocument struct {
	Transactions []jsonTransaction `json:"transactions"`
}

type jsonTransaction struct {
	Amounts *struct {
		Amount *json.Number `json:"amount"`
	} `json:"amounts"`
	BookkeepingType string `json:"bookkeeping_type"`
	Categories      []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Description *string `json:"description"`
	Times       *struct {
		WhenRecordedLocal string `json:"when_recorded_local"`
	} `json:"times"`
}

// JSONLoader reads a {"transactions": [...]} export document.
type JSONLoader struct {
	BaseLoader
}

// NewJSONLoader creates a new JSONLoader
func NewJSONLoader(logger logging.Logger) *JSONLoader {
	return &JSONLoader{BaseLoader: NewBaseLoader(logger)}
}

// Load implements Loader.
func (l *JSONLoader) Load(r io.Reader) ([]models.TransactionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON input: %w", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &parsererror.InvalidFormatError{
			Source:               string(JSON),
			ExpectedFormat:       `{"transactions": [...]}`,
			ActualContentSnippet: snippet(data),
			Msg:                  err.Error(),
		}
	}
	if doc.Transactions == nil {
		return nil, &parsererror.InvalidFormatError{
			Source:               string(JSON),
			ExpectedFormat:       `{"transactions": [...]}`,
			ActualContentSnippet: snippet(data),
			Msg:                  "missing transactions array",
		}
	}

	records := make([]models.TransactionRecord, 0, len(doc.Transactions))
	for i, tx := range doc.Transactions {
		rec, err := tx.toRecord()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		records = append(records, rec)
	}

	l.GetLogger().Debug("Decoded JSON transactions",
		logging.F(logging.FieldLoader, string(JSON)),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

func (tx jsonTransaction) toRecord() (models.TransactionRecord, error) {
	rec := models.TransactionRecord{
		BookkeepingType: tx.BookkeepingType,
		Description:     tx.Description,
	}

	if tx.Amounts != nil && tx.Amounts.Amount != nil {
		raw, err := parseAmountRaw(JSON, tx.Amounts.Amount.String())
		if err != nil {
			return rec, err
		}
		rec.AmountRaw = &raw
	}
	for _, c := range tx.Categories {
		rec.Category = append(rec.Category, c.Name)
	}
	if tx.Times != nil {
		rec.RecordedAtLocal = tx.Times.WhenRecordedLocal
	}
	return rec, nil
}

// parseAmountRaw reads an integral fixed-point amount.
func parseAmountRaw(source Format, value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, &parsererror.ParseError{Loader: string(source), Field: parsererror.FieldAmountRaw, Value: value, Err: err}
	}
	if !d.IsInteger() {
		return 0, &parsererror.ParseError{
			Loader: string(source),
			Field:  parsererror.FieldAmountRaw,
			Value:  value,
			Err:    fmt.Errorf("raw amounts are integers in units of 1/%d", models.AmountScale),
		}
	}
	return d.IntPart(), nil
}

func snippet(data []byte) string {
	if len(data) > snippetLength {
		return string(data[:snippetLength])
	}
	return string(data)
}
