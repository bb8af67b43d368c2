package pgsql

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowStub satisfies pgx.Row with a canned Scan.
type rowStub func(dest ...any) error

func (f rowStub) Scan(dest ...any) error { return f(dest...) }

// transferTxStub stands in for a database transaction during saveTransferTx
// tests. It answers the sender lock, the balance derivation and the insert,
// and records what was asked of it.
type transferTxStub struct {
	senderBalance decimal.Decimal
	lockCalls     int
	insertArgs    []any
}

func (s *transferTxStub) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "FOR UPDATE"):
		s.lockCalls++
		return rowStub(func(dest ...any) error {
			*dest[0].(*int64) = args[0].(int64)
			return nil
		})
	case strings.Contains(sql, "INSERT INTO money_transactions"):
		s.insertArgs = args
		return rowStub(func(dest ...any) error {
			*dest[0].(*int64) = 1
			return nil
		})
	default:
		return rowStub(func(dest ...any) error {
			*dest[0].(*decimal.Decimal) = s.senderBalance
			return nil
		})
	}
}

func (s *transferTxStub) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (s *transferTxStub) Begin(ctx context.Context) (pgx.Tx, error) { return s, nil }
func (s *transferTxStub) Commit(ctx context.Context) error          { return nil }
func (s *transferTxStub) Rollback(ctx context.Context) error        { return nil }
func (s *transferTxStub) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (s *transferTxStub) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (s *transferTxStub) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (s *transferTxStub) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (s *transferTxStub) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (s *transferTxStub) Conn() *pgx.Conn { return nil }

var _ pgx.Tx = (*transferTxStub)(nil)

// A fresh install has an empty ledger, so the admin recording the initial
// operating float sends from a zero balance. The system_input entry must
// still commit.
func TestSaveTransferTx_SystemInputRecordsOnFreshLedger(t *testing.T) {
	stub := &transferTxStub{senderBalance: decimal.Zero}
	txn := domain.MoneyTransaction{
		Date:        time.Now().UTC(),
		FromUserID:  1,
		ToUserID:    domain.SystemPartyID,
		Amount:      decimal.NewFromInt(1500),
		Description: "system money adjusted to 1500",
		Type:        domain.MoneySystemInput,
		CreatedAt:   time.Now().UTC(),
	}

	txnID, err := saveTransferTx(context.Background(), stub, txn)

	require.NoError(t, err)
	assert.Equal(t, int64(1), txnID)
	assert.Equal(t, 1, stub.lockCalls)
	require.NotNil(t, stub.insertArgs)

	// Snapshot convention: the sender's derived balance after the entry.
	remaining := stub.insertArgs[6].(decimal.Decimal)
	assert.True(t, remaining.Equal(decimal.NewFromInt(-1500)))
}

func TestSaveTransferTx_NormalTransferRejectedWhenUnderfunded(t *testing.T) {
	stub := &transferTxStub{senderBalance: decimal.NewFromInt(1000)}
	txn := domain.MoneyTransaction{
		Date:       time.Now().UTC(),
		FromUserID: 2,
		ToUserID:   3,
		Amount:     decimal.NewFromInt(1500),
		Type:       domain.MoneyNormal,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := saveTransferTx(context.Background(), stub, txn)

	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Nil(t, stub.insertArgs)
}

func TestSaveTransferTx_SystemSenderSkipsLock(t *testing.T) {
	stub := &transferTxStub{}
	txn := domain.MoneyTransaction{
		Date:       time.Now().UTC(),
		FromUserID: domain.SystemPartyID,
		ToUserID:   2,
		Amount:     decimal.NewFromInt(700),
		Type:       domain.MoneyNormal,
		CreatedAt:  time.Now().UTC(),
	}

	txnID, err := saveTransferTx(context.Background(), stub, txn)

	require.NoError(t, err)
	assert.Equal(t, int64(1), txnID)
	assert.Equal(t, 0, stub.lockCalls)

	remaining := stub.insertArgs[6].(decimal.Decimal)
	assert.True(t, remaining.Equal(decimal.NewFromInt(-700)))
}
