package wallet

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryAuthenticate(t *testing.T) {
	w := NewInMemory()

	auth, err := w.Authenticate(context.Background(), "secret", "op")
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	balance, err := w.Balance(context.Background(), auth.Token)
	require.NoError(t, err)
	assert.True(t, auth.Balance.Equal(balance))
}

func TestInMemoryUnknownToken(t *testing.T) {
	w := NewInMemory()

	_, err := w.Balance(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestInMemoryDebitAndCredit(t *testing.T) {
	w := NewInMemory()
	w.SetBalance("p", decimal.NewFromInt(10))

	balance, err := w.Transaction(context.Background(), TransactionRequest{
		ID: "tx-1", Kind: "debit", Amount: decimal.NewFromInt(2), Token: "p",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(balance))

	balance, err = w.Transaction(context.Background(), TransactionRequest{
		ID: "tx-2", Kind: "credit", Amount: decimal.NewFromInt(5), Token: "p",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(13).Equal(balance))
}

// Повтор транзакции с тем же id не применяется второй раз
func TestInMemoryIdempotency(t *testing.T) {
	w := NewInMemory()
	w.SetBalance("p", decimal.NewFromInt(10))

	req := TransactionRequest{ID: "tx-1", Kind: "debit", Amount: decimal.NewFromInt(3), Token: "p"}

	_, err := w.Transaction(context.Background(), req)
	require.NoError(t, err)

	balance, err := w.Transaction(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(balance))
}

func TestInMemoryInsufficientFunds(t *testing.T) {
	w := NewInMemory()
	w.SetBalance("p", decimal.NewFromInt(1))

	_, err := w.Transaction(context.Background(), TransactionRequest{
		ID: "tx-1", Kind: "debit", Amount: decimal.NewFromInt(2), Token: "p",
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestInMemoryCancelReversesDebit(t *testing.T) {
	w := NewInMemory()
	w.SetBalance("p", decimal.NewFromInt(10))

	req := TransactionRequest{ID: "tx-1", Kind: "debit", Amount: decimal.NewFromInt(4), Token: "p"}

	_, err := w.Transaction(context.Background(), req)
	require.NoError(t, err)

	balance, err := w.Cancel(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(balance))

	// Повторная отмена не проходит
	_, err = w.Cancel(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotApplied)
}

func TestInMemoryCancelUnapplied(t *testing.T) {
	w := NewInMemory()
	w.SetBalance("p", decimal.NewFromInt(10))

	_, err := w.Cancel(context.Background(), TransactionRequest{ID: "ghost", Kind: "debit", Token: "p"})
	assert.ErrorIs(t, err, ErrNotApplied)
}
