package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PoultryTransaction mirrors a row of the poultry_transactions table.
type PoultryTransaction struct {
	TransactionID int64           `db:"transaction_id"`
	Date          time.Time       `db:"date"`
	FarmerID      int64           `db:"farmer_id"`
	Type          string          `db:"transaction_type"`
	Quantity      decimal.Decimal `db:"quantity"`
	PricePerUnit  decimal.Decimal `db:"price_per_unit"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	VehicleNumber sql.NullString  `db:"vehicle_number"`
	DriverName    sql.NullString  `db:"driver_name"`
	Notes         sql.NullString  `db:"notes"`
	PaymentMode   sql.NullString  `db:"payment_mode"`
	PaymentAmount decimal.Decimal `db:"payment_amount"`
	PaymentStatus string          `db:"payment_status"`
	CreatedAt     time.Time       `db:"created_at"`

	// Join columns, only set by listing queries.
	FarmerName     sql.NullString `db:"farmer_name"`
	FarmerLocation sql.NullString `db:"farmer_location"`
}

// PaymentHistory mirrors a row of the payment_history table.
type PaymentHistory struct {
	HistoryID     int64           `db:"history_id"`
	TransactionID int64           `db:"transaction_id"`
	Date          time.Time       `db:"payment_date"`
	Amount        decimal.Decimal `db:"payment_amount"`
	Mode          string          `db:"payment_mode"`
	Notes         sql.NullString  `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
}
