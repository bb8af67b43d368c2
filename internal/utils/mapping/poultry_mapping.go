package mapping

import (
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/models"
)

// ToModelPoultryTransaction converts a domain PoultryTransaction to its model
func ToModelPoultryTransaction(d domain.PoultryTransaction) models.PoultryTransaction {
	return models.PoultryTransaction{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		FarmerID:      d.FarmerID,
		Type:          string(d.Type),
		Quantity:      d.Quantity,
		PricePerUnit:  d.PricePerUnit,
		TotalAmount:   d.TotalAmount,
		VehicleNumber: nullString(d.VehicleNumber),
		DriverName:    nullString(d.DriverName),
		Notes:         nullString(d.Notes),
		PaymentMode:   nullString(d.PaymentMode),
		PaymentAmount: d.PaymentAmount,
		PaymentStatus: string(d.PaymentStatus),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainPoultryTransaction converts a model PoultryTransaction to its domain form
func ToDomainPoultryTransaction(m models.PoultryTransaction) domain.PoultryTransaction {
	return domain.PoultryTransaction{
		TransactionID:  m.TransactionID,
		Date:           m.Date,
		FarmerID:       m.FarmerID,
		Type:           domain.PoultryTransactionType(m.Type),
		Quantity:       m.Quantity,
		PricePerUnit:   m.PricePerUnit,
		TotalAmount:    m.TotalAmount,
		VehicleNumber:  m.VehicleNumber.String,
		DriverName:     m.DriverName.String,
		Notes:          m.Notes.String,
		PaymentMode:    m.PaymentMode.String,
		PaymentAmount:  m.PaymentAmount,
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:      m.CreatedAt,
		FarmerName:     m.FarmerName.String,
		FarmerLocation: m.FarmerLocation.String,
	}
}

// ToDomainPoultryTransactionSlice converts model transactions to domain ones
func ToDomainPoultryTransactionSlice(ms []models.PoultryTransaction) []domain.PoultryTransaction {
	ds := make([]domain.PoultryTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPoultryTransaction(m)
	}
	return ds
}

// ToDomainPaymentHistory converts a model PaymentHistory row to its domain form
func ToDomainPaymentHistory(m models.PaymentHistory) domain.PaymentHistory {
	return domain.PaymentHistory{
		HistoryID:     m.HistoryID,
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Amount:        m.Amount,
		Mode:          m.Mode,
		Notes:         m.Notes.String,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainPaymentHistorySlice converts model history rows to domain ones
func ToDomainPaymentHistorySlice(ms []models.PaymentHistory) []domain.PaymentHistory {
	ds := make([]domain.PaymentHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentHistory(m)
	}
	return ds
}
