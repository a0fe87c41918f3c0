package replay

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoundResponse struct {
	ID          string          `json:"id"`          // Идентификатор раунда
	PlayerToken string          `json:"playerToken"` // Токен игрока
	Bet         decimal.Decimal `json:"bet"`         // Ставка
	Symbols     []string        `json:"symbols"`     // Записанные символы
	Win         decimal.Decimal `json:"win"`         // Записанный выигрыш
	CreatedAt   time.Time       `json:"createdAt"`   // Момент расчета
}

type TransactionResponse struct {
	ID          string          `json:"id"`          // Идентификатор транзакции
	RoundID     string          `json:"roundId"`     // Раунд-владелец
	PlayerToken string          `json:"playerToken"` // Токен игрока
	Kind        string          `json:"kind"`        // debit | credit
	Amount      decimal.Decimal `json:"amount"`      // Сумма
	CreatedAt   time.Time       `json:"createdAt"`   // Момент записи
}
