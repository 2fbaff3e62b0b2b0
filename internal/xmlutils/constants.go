// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

// CAMT053 holds the XPath expressions used to read CAMT.053 statements.
// Entry expressions are relative to one Ntry node.
type CAMT053 struct {
	// Statement marks a document as CAMT.053
	Statement string
	// Entries selects every booked entry
	Entries string

	Entry struct {
		Amount          string
		Currency        string
		CreditDebitInd  string
		BookingDate     string
		BookingDateTime string
		AddEntryInfo    string
		BankTxFamily    string
	}

	Remittance struct {
		UnstructuredInfo string
		AdditionalTxInfo string
	}
}

// DefaultCamt053XPaths returns a CAMT053 struct with the default XPath expressions
func DefaultCamt053XPaths() CAMT053 {
	camt := CAMT053{
		Statement: "//BkToCstmrStmt/Stmt",
		Entries:   "//BkToCstmrStmt/Stmt/Ntry",
	}

	camt.Entry.Amount = "Amt"
	camt.Entry.Currency = "Amt/@Ccy"
	camt.Entry.CreditDebitInd = "CdtDbtInd" // #nosec G101 -- XPath expression, not credentials
	camt.Entry.BookingDate = "BookgDt/Dt"
	camt.Entry.BookingDateTime = "BookgDt/DtTm"
	camt.Entry.AddEntryInfo = "AddtlNtryInf"
	camt.Entry.BankTxFamily = "BkTxCd/Domn/Fmly/Cd"

	camt.Remittance.UnstructuredInfo = "NtryDtls/TxDtls/RmtInf/Ustrd"
	camt.Remittance.AdditionalTxInfo = "NtryDtls/TxDtls/AddtlTxInf"

	return camt
}

// Credit/debit indicators of a CAMT.053 entry
const (
	IndicatorDebit  = "DBIT"
	IndicatorCredit = "CRDT"
)
