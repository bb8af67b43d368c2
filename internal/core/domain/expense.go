package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money a user spent out of their tracked balance. Each expense
// materializes a user -> system money transaction in the same database
// transaction so the ledger stays in lockstep.
type Expense struct {
	ExpenseID    int64           `json:"expenseID"`
	UserID       int64           `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
	ReceiptImage []byte          `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`

	// Populated on admin listings that join the users table.
	Username string `json:"username,omitempty"`
}
