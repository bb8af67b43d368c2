package dto

import "github.com/shopspring/decimal"

// CreateTransferRequest carries one directed money movement between parties.
// Party ID 0 is the system pseudo-account.
type CreateTransferRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	FromUserID  int64           `json:"fromUserID"`
	ToUserID    int64           `json:"toUserID"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"omitempty,max=1024"`
	Type        string          `json:"type" binding:"omitempty,oneof=normal system_input distribution expense"`
	ProofImage  []byte          `json:"proofImage,omitempty"`
}

// AdjustSystemMoneyRequest sets the system float to a new total; the delta is
// recorded as a synthetic ledger entry.
type AdjustSystemMoneyRequest struct {
	NewTotal decimal.Decimal `json:"newTotal" binding:"required"`
}

// BalanceResponse reports a party's derived balance.
type BalanceResponse struct {
	PartyID int64           `json:"partyID"`
	Balance decimal.Decimal `json:"balance"`
}

// ReconcileResponse reports how many snapshot rows a reconciliation pass
// corrected.
type ReconcileResponse struct {
	Corrected int `json:"corrected"`
}
