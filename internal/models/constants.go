package models

// Canonical bookkeeping types. Comparisons lowercase both sides, so these are
// the forms records are normalised to.
const (
	BookkeepingDebit  = "debit"
	BookkeepingCredit = "credit"
)

// AmountScale is the fixed-point factor of TransactionRecord.AmountRaw.
const AmountScale = 10000

// SignificantDigits is the precision every amount and running total is clamped to.
const SignificantDigits = 4
