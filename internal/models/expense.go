package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors a row of the expenses table.
type Expense struct {
	ExpenseID    int64           `db:"expense_id"`
	UserID       int64           `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	Category     string          `db:"category"`
	Description  sql.NullString  `db:"description"`
	Date         time.Time       `db:"date"`
	ReceiptImage []byte          `db:"receipt_image"`
	CreatedAt    time.Time       `db:"created_at"`

	// Join column, only set by admin listings.
	Username sql.NullString `db:"username"`
}
