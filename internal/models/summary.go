package models

import "github.com/shopspring/decimal"

// RankedEntry is one (key, total) pair of a ranked summary.
type RankedEntry struct {
	Key   string          `json:"key" yaml:"key"`
	Total decimal.Decimal `json:"total" yaml:"total"`
}

// SpendingSummary maps grouping keys to totals and remembers the order in
// which keys were first stored. Ranking ties fall back to that order.
type SpendingSummary struct {
	keys   []string
	totals map[string]decimal.Decimal
}

// NewSpendingSummary returns an empty summary.
func NewSpendingSummary() *SpendingSummary {
	return &SpendingSummary{totals: make(map[string]decimal.Decimal)}
}

// Set stores total for key. A new key is appended to the key order.
func (s *SpendingSummary) Set(key string, total decimal.Decimal) {
	if _, exists := s.totals[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.totals[key] = total
}

// Get returns the total for key; absent keys yield zero and false.
func (s *SpendingSummary) Get(key string) (decimal.Decimal, bool) {
	total, ok := s.totals[key]
	if !ok {
		return decimal.Zero, false
	}
	return total, true
}

// Len returns the number of keys
func (s *SpendingSummary) Len() int {
	return len(s.keys)
}

// IsEmpty reports whether no key has been stored.
func (s *SpendingSummary) IsEmpty() bool {
	return len(s.keys) == 0
}

// Keys returns the keys in first-seen order.
func (s *SpendingSummary) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Entries returns the (key, total) pairs in first-seen order.
func (s *SpendingSummary) Entries() []RankedEntry {
	entries := make([]RankedEntry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, RankedEntry{Key: key, Total: s.totals[key]})
	}
	return entries
}

// Map returns a copy of the key to total mapping.
func (s *SpendingSummary) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(s.totals))
	for k, v := range s.totals {
		m[k] = v
	}
	return m
}
