package models

import (
	"fmt"
	"strings"

	"fjacquet/spend-summary/internal/parsererror"
)

// GroupingMode selects the key transactions are bucketed by.
type GroupingMode int

const (
	// GroupByDescription keys on the record description, verbatim.
	GroupByDescription GroupingMode = iota
	// GroupByCategory keys on the record's primary category.
	GroupByCategory
)

// ParseGroupingMode accepts "description" or "category" in any case.
func ParseGroupingMode(s string) (GroupingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "description", "desc":
		return GroupByDescription, nil
	case "category":
		return GroupByCategory, nil
	default:
		return 0, &parsererror.ValidationError{
			Field:  "group_by",
			Reason: fmt.Sprintf("unknown grouping '%s' (want description or category)", s),
		}
	}
}

func (m GroupingMode) String() string {
	switch m {
	case GroupByDescription:
		return "description"
	case GroupByCategory:
		return "category"
	default:
		return fmt.Sprintf("GroupingMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m GroupingMode) Valid() bool {
	return m == GroupByDescription || m == GroupByCategory
}

// KeyField names the record field the mode reads.
func (m GroupingMode) KeyField() string {
	if m == GroupByCategory {
		return parsererror.FieldCategory
	}
	return parsererror.FieldDescription
}

// KeyOf returns the grouping key of r, or false when the field is absent.
func (m GroupingMode) KeyOf(r TransactionRecord) (string, bool) {
	switch m {
	case GroupByDescription:
		return r.DescriptionText()
	case GroupByCategory:
		return r.PrimaryCategory()
	default:
		return "", false
	}
}
