package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PoultryTransactionType distinguishes purchases from farmers and sales to them.
type PoultryTransactionType string

const (
	TransactionBuy  PoultryTransactionType = "buy"
	TransactionSell PoultryTransactionType = "sell"
)

// PaymentStatus summarises how much of a transaction's total has been paid.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "Unpaid"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentFullyPaid     PaymentStatus = "Fully Paid"
)

// PoultryTransaction records one buy or sell with a farmer. TotalAmount is
// always Quantity * PricePerUnit; PaymentStatus is always derivable from
// PaymentAmount vs TotalAmount.
type PoultryTransaction struct {
	TransactionID int64                  `json:"transactionID"`
	Date          time.Time              `json:"date"`
	FarmerID      int64                  `json:"farmerID"`
	Type          PoultryTransactionType `json:"type"`
	Quantity      decimal.Decimal        `json:"quantity"`
	PricePerUnit  decimal.Decimal        `json:"pricePerUnit"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	VehicleNumber string                 `json:"vehicleNumber,omitempty"`
	DriverName    string                 `json:"driverName,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	PaymentMode   string                 `json:"paymentMode,omitempty"`
	PaymentAmount decimal.Decimal        `json:"paymentAmount"`
	PaymentStatus PaymentStatus          `json:"paymentStatus"`
	CreatedAt     time.Time              `json:"createdAt"`

	// Populated on listing queries that join the farmers table.
	FarmerName     string `json:"farmerName,omitempty"`
	FarmerLocation string `json:"farmerLocation,omitempty"`
}

// DerivePaymentStatus computes the payment status for a transaction with the
// given total and cumulative paid amount. Used identically at creation and at
// each payment-history append.
func DerivePaymentStatus(total, paid decimal.Decimal) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PaymentUnpaid
	case paid.GreaterThanOrEqual(total):
		return PaymentFullyPaid
	default:
		return PaymentPartiallyPaid
	}
}

// ApplyPayment returns the cumulative paid amount after one more installment.
// Installments that would push the cumulative amount past the total are
// refused: ok is false and paid is returned unchanged. A fully paid
// transaction therefore refuses every further installment.
func ApplyPayment(total, paid, installment decimal.Decimal) (newPaid decimal.Decimal, ok bool) {
	newPaid = paid.Add(installment)
	if newPaid.GreaterThan(total) {
		return paid, false
	}
	return newPaid, true
}
