package model

import (
	"time"

	"github.com/shopspring/decimal"

	"slot_backend/internal/game"
)

// Round - один сыгранный раунд: ставка, три символа, выигрыш.
// Создается один раз при расчете и дальше не изменяется
type Round struct {
	ID          string
	PlayerToken string
	Bet         decimal.Decimal
	Symbols     [3]game.Symbol
	Win         decimal.Decimal
	CreatedAt   time.Time
}

type TransactionKind string

const (
	TransactionDebit  TransactionKind = "debit"
	TransactionCredit TransactionKind = "credit"
)

// Transaction - запись о движении денег, привязанная к раунду.
// У раунда ровно один дебет; кредит существует только при положительном выигрыше
type Transaction struct {
	ID          string
	RoundID     string
	PlayerToken string
	Kind        TransactionKind
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
