package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Player связывает токен внешнего кошелька с оператором.
// Баланс игрока движок не хранит - он всегда запрашивается у кошелька
type Player struct {
	Token     string
	Operator  string
	CreatedAt time.Time
}

// PlayerData - токен и актуальный баланс для выдачи клиенту
type PlayerData struct {
	Token   string
	Balance decimal.Decimal
}
