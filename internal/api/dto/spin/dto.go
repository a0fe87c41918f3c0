package spin

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Bet   decimal.Decimal `json:"bet"`   // Размер ставки из списка допустимых
	Token string          `json:"token"` // Токен игрока от кошелька
}

type SpinResponse struct {
	RoundID string          `json:"roundId"` // Идентификатор раунда
	Symbols []string        `json:"symbols"` // Три выпавших символа
	Win     decimal.Decimal `json:"win"`     // Выигрыш
	Balance decimal.Decimal `json:"balance"` // Баланс после расчета
}

type PlayerResponse struct {
	Token   string          `json:"token"`   // Токен игрока
	Balance decimal.Decimal `json:"balance"` // Актуальный баланс
}

type ConfigResponse struct {
	Symbols       []string                   `json:"symbols"`       // Перечень символов
	Probabilities map[string]float64         `json:"probabilities"` // Вероятности по символам
	Payouts       map[string]decimal.Decimal `json:"payouts"`       // Множители выплат
	Bets          []decimal.Decimal          `json:"bets"`          // Допустимые ставки
	Operator      string                     `json:"operator"`      // Имя оператора
}
