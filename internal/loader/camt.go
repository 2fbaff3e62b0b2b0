package loader

import (
	"fmt"
	"io"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"
	"fjacquet/spend-summary/internal/xmlutils"

	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"
)

// amountScaleDigits is log10(models.AmountScale)
const amountScaleDigits = 4

// CAMTLoader reads booked entries from an ISO 20022 CAMT.053 bank statement.
type CAMTLoader struct {
	BaseLoader
	paths xmlutils.CAMT053
}

// NewCAMTLoader creates a new CAMTLoader
func NewCAMTLoader(logger logging.Logger) *CAMTLoader {
	return &CAMTLoader{
		BaseLoader: NewBaseLoader(logger),
		paths:      xmlutils.DefaultCamt053XPaths(),
	}
}

// Load implements Loader. Each Ntry becomes one record.
func (l *CAMTLoader) Load(r io.Reader) ([]models.TransactionRecord, error) {
	root, err := xmlutils.ParseXML(r)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			Source:         string(CAMT),
			ExpectedFormat: "CAMT.053 XML",
			Msg:            err.Error(),
		}
	}

	isStatement, err := xmlutils.Exists(root, l.paths.Statement)
	if err != nil {
		return nil, err
	}
	if !isStatement {
		return nil, &parsererror.InvalidFormatError{
			Source:         string(CAMT),
			ExpectedFormat: "CAMT.053 XML",
			Msg:            "no BkToCstmrStmt/Stmt element",
		}
	}

	entries, err := xmlutils.SelectNodes(root, l.paths.Entries)
	if err != nil {
		return nil, err
	}

	records := make([]models.TransactionRecord, 0, len(entries))
	for i, entry := range entries {
		rec, err := l.entryToRecord(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, rec)
	}

	l.GetLogger().Debug("Extracted CAMT.053 entries",
		logging.F(logging.FieldLoader, string(CAMT)),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

func (l *CAMTLoader) entryToRecord(entry *xmlpath.Node) (models.TransactionRecord, error) {
	var rec models.TransactionRecord

	var pathErr error
	text := func(xpath string) string {
		v, err := xmlutils.FirstText(entry, xpath)
		if err != nil && pathErr == nil {
			pathErr = fmt.Errorf("reading %s: %w", xpath, err)
		}
		return v
	}

	if amount := text(l.paths.Entry.Amount); amount != "" {
		raw, err := camtAmountRaw(amount)
		if err != nil {
			return rec, err
		}
		rec.AmountRaw = &raw
	}

	switch ind := text(l.paths.Entry.CreditDebitInd); ind {
	case xmlutils.IndicatorDebit:
		rec.BookkeepingType = models.BookkeepingDebit
	case xmlutils.IndicatorCredit:
		rec.BookkeepingType = models.BookkeepingCredit
	default:
		rec.BookkeepingType = ind
	}

	rec.RecordedAtLocal = text(l.paths.Entry.BookingDate)
	if rec.RecordedAtLocal == "" {
		rec.RecordedAtLocal = text(l.paths.Entry.BookingDateTime)
	}

	description := text(l.paths.Remittance.UnstructuredInfo)
	if description == "" {
		description = text(l.paths.Entry.AddEntryInfo)
	}
	if description == "" {
		description = text(l.paths.Remittance.AdditionalTxInfo)
	}
	if description != "" {
		rec.Description = &description
	}

	if family := text(l.paths.Entry.BankTxFamily); family != "" {
		rec.Category = []string{family}
	}

	if pathErr != nil {
		return rec, pathErr
	}
	return rec, nil
}

// camtAmountRaw converts a decimal statement amount to fixed-point units.
func camtAmountRaw(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, &parsererror.ParseError{Loader: string(CAMT), Field: parsererror.FieldAmountRaw, Value: value, Err: err}
	}
	scaled := d.Shift(amountScaleDigits)
	if !scaled.IsInteger() {
		return 0, &parsererror.ParseError{
			Loader: string(CAMT),
			Field:  parsererror.FieldAmountRaw,
			Value:  value,
			Err:    fmt.Errorf("more than %d decimal places", amountScaleDigits),
		}
	}
	return scaled.IntPart(), nil
}
