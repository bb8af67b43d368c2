package mapping

import (
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		Category:     d.Category,
		Description:  nullString(d.Description),
		Date:         d.Date,
		ReceiptImage: d.ReceiptImage,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Category:     m.Category,
		Description:  m.Description.String,
		Date:         m.Date,
		ReceiptImage: m.ReceiptImage,
		CreatedAt:    m.CreatedAt,
		Username:     m.Username.String,
	}
}

// ToDomainExpenseSlice converts model expenses to domain ones
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
