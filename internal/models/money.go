package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyTransaction mirrors a row of the money_transactions table.
type MoneyTransaction struct {
	TransactionID    int64           `db:"transaction_id"`
	Date             time.Time       `db:"date"`
	FromUserID       int64           `db:"from_user_id"`
	ToUserID         int64           `db:"to_user_id"`
	Amount           decimal.Decimal `db:"amount"`
	Description      sql.NullString  `db:"description"`
	Type             string          `db:"transaction_type"`
	RemainingBalance decimal.Decimal `db:"remaining_balance"`
	ProofImage       []byte          `db:"proof_image"`
	CreatedAt        time.Time       `db:"created_at"`

	// Join columns, only set by listing queries.
	FromUsername sql.NullString `db:"from_username"`
	ToUsername   sql.NullString `db:"to_username"`
}
