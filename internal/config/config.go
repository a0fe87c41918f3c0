package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// WalletConfig - параметры подключения к внешнему кошельку.
// Таймаут применяется к каждому внешнему вызову отдельно
type WalletConfig interface {
	BaseURL() string
	Secret() string
	Timeout() time.Duration
}

// GameConfig - игровые параметры, фиксируемые на старте процесса
type GameConfig interface {
	Bets() []decimal.Decimal
	Operator() string
}
