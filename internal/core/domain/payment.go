package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentHistory is one append-only installment against a poultry transaction.
// The sum of a transaction's history amounts, plus any amount set at creation,
// equals the transaction's current payment amount.
type PaymentHistory struct {
	HistoryID     int64           `json:"historyID"`
	TransactionID int64           `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Mode          string          `json:"mode"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
