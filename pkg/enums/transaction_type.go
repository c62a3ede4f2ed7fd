package enums

import "fmt"

// TransactionType marks wallet entries as money in or money out.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

var validTransactionTypes = []TransactionType{
	TransactionTypeCredit,
	TransactionTypeDebit,
}

// String implements fmt.Stringer.
func (tt TransactionType) String() string {
	return string(tt)
}

// IsValid reports whether the value is a known TransactionType.
func (tt TransactionType) IsValid() bool {
	for _, candidate := range validTransactionTypes {
		if candidate == tt {
			return true
		}
	}
	return false
}

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	for _, candidate := range validTransactionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction type %q", value)
}
