package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownToken      = errors.New("unknown wallet token")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotApplied        = errors.New("transaction was not applied")
)

// Стартовый баланс для нового токена
var defaultStartBalance = decimal.NewFromInt(1000)

// InMemory - кошелек в памяти для тестов и локального стенда.
// Транзакции идемпотентны по id, отмена возвращает ранее примененную сумму
type InMemory struct {
	mtx       sync.Mutex
	balances  map[string]decimal.Decimal
	applied   map[string]TransactionRequest
	cancelled map[string]bool
}

func NewInMemory() *InMemory {
	return &InMemory{
		balances:  make(map[string]decimal.Decimal),
		applied:   make(map[string]TransactionRequest),
		cancelled: make(map[string]bool),
	}
}

func (w *InMemory) Authenticate(_ context.Context, _, _ string) (*AuthResult, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	token := uuid.NewString()
	w.balances[token] = defaultStartBalance

	return &AuthResult{Token: token, Balance: defaultStartBalance}, nil
}

func (w *InMemory) Balance(_ context.Context, token string) (decimal.Decimal, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	balance, ok := w.balances[token]
	if !ok {
		return decimal.Zero, ErrUnknownToken
	}

	return balance, nil
}

func (w *InMemory) Transaction(_ context.Context, req TransactionRequest) (decimal.Decimal, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	balance, ok := w.balances[req.Token]
	if !ok {
		return decimal.Zero, ErrUnknownToken
	}

	// Повтор с тем же id не применяется второй раз
	if _, done := w.applied[req.ID]; done {
		return balance, nil
	}

	next, err := apply(balance, req)
	if err != nil {
		return decimal.Zero, err
	}

	w.balances[req.Token] = next
	w.applied[req.ID] = req

	return next, nil
}

func (w *InMemory) Cancel(_ context.Context, req TransactionRequest) (decimal.Decimal, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	balance, ok := w.balances[req.Token]
	if !ok {
		return decimal.Zero, ErrUnknownToken
	}

	original, done := w.applied[req.ID]
	if !done || w.cancelled[req.ID] {
		return decimal.Zero, ErrNotApplied
	}

	// Разворачиваем примененную операцию
	reversed := original
	if original.Kind == "debit" {
		reversed.Kind = "credit"
	} else {
		reversed.Kind = "debit"
	}

	next, err := apply(balance, reversed)
	if err != nil {
		return decimal.Zero, err
	}

	w.balances[req.Token] = next
	w.cancelled[req.ID] = true

	return next, nil
}

// SetBalance выставляет баланс токена напрямую (для подготовки тестов)
func (w *InMemory) SetBalance(token string, balance decimal.Decimal) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	w.balances[token] = balance
}

func apply(balance decimal.Decimal, req TransactionRequest) (decimal.Decimal, error) {
	switch req.Kind {
	case "debit":
		if balance.LessThan(req.Amount) {
			return decimal.Zero, ErrInsufficientFunds
		}
		return balance.Sub(req.Amount), nil
	case "credit":
		return balance.Add(req.Amount), nil
	default:
		return decimal.Zero, errors.New("unknown transaction kind: " + req.Kind)
	}
}
