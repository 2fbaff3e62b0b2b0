package models

import "strings"

// TransactionRecord is one transaction as handed over by a loader.
// Absent fields are nil (AmountRaw, Description) or empty; the pipeline
// reports them instead of guessing. An empty Description is a valid key.
type TransactionRecord struct {
	AmountRaw       *int64   `json:"amount_raw,omitempty" yaml:"amount_raw,omitempty"`
	BookkeepingType string   `json:"bookkeeping_type" yaml:"bookkeeping_type"`
	Category        []string `json:"category,omitempty" yaml:"category,omitempty"`
	Description     *string  `json:"description,omitempty" yaml:"description,omitempty"`
	RecordedAtLocal string   `json:"recorded_at_local" yaml:"recorded_at_local"`
}

// NewTransactionRecord builds a record with every field present.
func NewTransactionRecord(amountRaw int64, bookkeepingType, description, recordedAt string, categories ...string) TransactionRecord {
	return TransactionRecord{
		AmountRaw:       &amountRaw,
		BookkeepingType: bookkeepingType,
		Category:        categories,
		Description:     &description,
		RecordedAtLocal: recordedAt,
	}
}

// HasAmount reports whether AmountRaw is present
func (r TransactionRecord) HasAmount() bool {
	return r.AmountRaw != nil
}

// DescriptionText returns the description, or false when it is absent.
func (r TransactionRecord) DescriptionText() (string, bool) {
	if r.Description == nil {
		return "", false
	}
	return *r.Description, true
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// PrimaryCategory returns the first category label.
func (r TransactionRecord) PrimaryCategory() (string, bool) {
	if len(r.Category) == 0 || r.Category[0] == "" {
		return "", false
	}
	return r.Category[0], true
}

// NormalizedType returns the bookkeeping type in canonical lower case.
func (r TransactionRecord) NormalizedType() (string, bool) {
	if r.BookkeepingType == "" {
		return "", false
	}
	return NormalizeBookkeepingType(r.BookkeepingType), true
}

// NormalizeBookkeepingType lowercases a bookkeeping type label.
func NormalizeBookkeepingType(t string) string {
	return strings.ToLower(t)
}
