package dto

import "github.com/shopspring/decimal"

// CreatePoultryTransactionRequest carries the data for recording a purchase
// or a sale. Dates use the YYYY-MM-DD layout.
type CreatePoultryTransactionRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	FarmerID      int64           `json:"farmerID" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=buy sell"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit" binding:"required"`
	VehicleNumber string          `json:"vehicleNumber" binding:"omitempty,max=32"`
	DriverName    string          `json:"driverName" binding:"omitempty,max=255"`
	Notes         string          `json:"notes" binding:"omitempty,max=1024"`
	PaymentMode   string          `json:"paymentMode" binding:"omitempty,max=32"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
}

// UpdatePoultryTransactionRequest carries an admin edit of the non-payment
// fields; nil fields are left unchanged.
type UpdatePoultryTransactionRequest struct {
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Quantity      *decimal.Decimal `json:"quantity"`
	PricePerUnit  *decimal.Decimal `json:"pricePerUnit"`
	VehicleNumber *string          `json:"vehicleNumber" binding:"omitempty,max=32"`
	DriverName    *string          `json:"driverName" binding:"omitempty,max=255"`
	Notes         *string          `json:"notes" binding:"omitempty,max=1024"`
}

// AppendPaymentRequest carries one installment against a transaction.
type AppendPaymentRequest struct {
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Mode   string          `json:"mode" binding:"required,max=32"`
	Notes  string          `json:"notes" binding:"omitempty,max=1024"`
}

// ListTransactionsParams narrows transaction listings via query parameters.
type ListTransactionsParams struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	Type     string `form:"type" binding:"omitempty,oneof=buy sell"`
	FarmerID int64  `form:"farmerID"`
}

// SearchTransactionsParams carries a free-text transaction search.
type SearchTransactionsParams struct {
	Term string `form:"term" binding:"required,min=1"`
	Type string `form:"type" binding:"omitempty,oneof=buy sell"`
}
