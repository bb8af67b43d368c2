package dto

import "github.com/shopspring/decimal"

// RecordExpenseRequest carries one expense spent out of a user's tracked
// balance.
type RecordExpenseRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Category     string          `json:"category" binding:"required,max=64"`
	Description  string          `json:"description" binding:"omitempty,max=1024"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	ReceiptImage []byte          `json:"receiptImage,omitempty"`
}
