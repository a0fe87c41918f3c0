package model

import (
	"github.com/shopspring/decimal"

	"slot_backend/internal/game"
)

type SpinRequest struct {
	Token string
	Bet   decimal.Decimal
}

type SpinResult struct {
	RoundID string
	Symbols [3]game.Symbol
	Win     decimal.Decimal
	Balance decimal.Decimal
}

// GameData - статический снимок игровой конфигурации для клиента
type GameData struct {
	Symbols  []game.Symbol
	Bets     []decimal.Decimal
	Operator string
}
