package mapping

import (
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/models"
)

// ToModelMoneyTransaction converts a domain MoneyTransaction to its model
func ToModelMoneyTransaction(d domain.MoneyTransaction) models.MoneyTransaction {
	return models.MoneyTransaction{
		TransactionID:    d.TransactionID,
		Date:             d.Date,
		FromUserID:       d.FromUserID,
		ToUserID:         d.ToUserID,
		Amount:           d.Amount,
		Description:      nullString(d.Description),
		Type:             string(d.Type),
		RemainingBalance: d.RemainingBalance,
		ProofImage:       d.ProofImage,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainMoneyTransaction converts a model MoneyTransaction to its domain form
func ToDomainMoneyTransaction(m models.MoneyTransaction) domain.MoneyTransaction {
	return domain.MoneyTransaction{
		TransactionID:    m.TransactionID,
		Date:             m.Date,
		FromUserID:       m.FromUserID,
		ToUserID:         m.ToUserID,
		Amount:           m.Amount,
		Description:      m.Description.String,
		Type:             domain.MoneyTransactionType(m.Type),
		RemainingBalance: m.RemainingBalance,
		ProofImage:       m.ProofImage,
		CreatedAt:        m.CreatedAt,
		FromUsername:     m.FromUsername.String,
		ToUsername:       m.ToUsername.String,
	}
}

// ToDomainMoneyTransactionSlice converts model ledger rows to domain ones
func ToDomainMoneyTransactionSlice(ms []models.MoneyTransaction) []domain.MoneyTransaction {
	ds := make([]domain.MoneyTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoneyTransaction(m)
	}
	return ds
}
