package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the semantic kind of a transaction.
// The kind is authoritative for income/expense classification; the sign
// of the amount is not trusted.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// ParseKind maps a raw kind value to its canonical TransactionKind.
// Historical data encodes the kind inconsistently: alongside the
// canonical vocabulary, rows may carry "receita"/"despesa" or
// "entrada"/"saida". All known spellings are resolved here, once, so
// no aggregation step ever compares raw strings.
func ParseKind(raw string) (TransactionKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income", "receita", "entrada":
		return KindIncome, true
	case "expense", "despesa", "saida", "saída":
		return KindExpense, true
	}
	return "", false
}

// Transaction represents a single dated financial movement belonging to
// one owner. Description doubles as the category key for expense
// grouping. Amounts are stored as exact decimals in a single currency.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Description string          `gorm:"size:500" json:"description"`
	OccurredOn  time.Time       `gorm:"type:date;not null;index" json:"occurred_on"`
	IsSettled   bool            `gorm:"not null;default:false" json:"is_settled"`
}
