package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyTransactionType classifies ledger entries.
type MoneyTransactionType string

const (
	MoneyNormal       MoneyTransactionType = "normal"
	MoneySystemInput  MoneyTransactionType = "system_input"
	MoneyDistribution MoneyTransactionType = "distribution"
	MoneyExpense      MoneyTransactionType = "expense"
)

// MoneyTransaction is a directed, immutable ledger entry between two parties.
// A party's balance is the signed sum (+amount when recipient, -amount when
// sender) over all entries naming that party. RemainingBalance is a
// denormalized snapshot, never authoritative.
type MoneyTransaction struct {
	TransactionID    int64                `json:"transactionID"`
	Date             time.Time            `json:"date"`
	FromUserID       int64                `json:"fromUserID"`
	ToUserID         int64                `json:"toUserID"`
	Amount           decimal.Decimal      `json:"amount"`
	Description      string               `json:"description,omitempty"`
	Type             MoneyTransactionType `json:"type"`
	RemainingBalance decimal.Decimal      `json:"remainingBalance"`
	ProofImage       []byte               `json:"-"`
	CreatedAt        time.Time            `json:"createdAt"`

	// Populated on listing queries that join the users table.
	FromUsername string `json:"fromUsername,omitempty"`
	ToUsername   string `json:"toUsername,omitempty"`
}

// ExemptFromFundsCheck reports whether the entry bypasses the sender balance
// check. The system pseudo-account has no internal balance to overdraw, and
// system_input entries represent external money entering or leaving the
// tracked float, so neither is gated on the sender's ledger balance.
func (t MoneyTransaction) ExemptFromFundsCheck() bool {
	return t.FromUserID == SystemPartyID || t.Type == MoneySystemInput
}
