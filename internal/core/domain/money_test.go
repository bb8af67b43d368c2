package domain_test

import (
	"testing"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestExemptFromFundsCheck(t *testing.T) {
	testCases := []struct {
		name string
		txn  domain.MoneyTransaction
		want bool
	}{
		{
			"normal transfer between users is checked",
			domain.MoneyTransaction{FromUserID: 2, ToUserID: 3, Type: domain.MoneyNormal},
			false,
		},
		{
			"system sender is exempt",
			domain.MoneyTransaction{FromUserID: domain.SystemPartyID, ToUserID: 2, Type: domain.MoneyNormal},
			true,
		},
		{
			"system input from a real user is exempt",
			domain.MoneyTransaction{FromUserID: 1, ToUserID: domain.SystemPartyID, Type: domain.MoneySystemInput},
			true,
		},
		{
			"expense from a real user is checked",
			domain.MoneyTransaction{FromUserID: 2, ToUserID: domain.SystemPartyID, Type: domain.MoneyExpense},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.txn.ExemptFromFundsCheck())
		})
	}
}
