package wallet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AuthResult - результат аутентификации у кошелька: выданный токен и баланс
type AuthResult struct {
	Token   string          `json:"token"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionRequest - тело запроса на применение или отмену движения денег.
// Идентификатор транзакции у кошелька идемпотентен: повтор с тем же id
// не применяется второй раз
type TransactionRequest struct {
	ID        string          `json:"transactionId"`
	RoundID   string          `json:"roundId"`
	PlayerID  string          `json:"playerId"`
	Kind      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	Token     string          `json:"token"`
}

// Wallet - внешний кошелек, система учета баланса игроков.
// Все операции возвращают баланс после применения
type Wallet interface {
	Authenticate(ctx context.Context, secret, operator string) (*AuthResult, error)
	Balance(ctx context.Context, token string) (decimal.Decimal, error)
	Transaction(ctx context.Context, req TransactionRequest) (decimal.Decimal, error)
	Cancel(ctx context.Context, req TransactionRequest) (decimal.Decimal, error)
}
