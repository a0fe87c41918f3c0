package repository

import (
	"context"

	"slot_backend/internal/model"
)

type PlayerRepository interface {
	UpsertPlayer(ctx context.Context, player *model.Player) error
}

// RoundRepository - журнал раундов и денежных движений.
// Записи добавляются и читаются; единственное удаление - RemoveTransaction,
// и оно применяется только при компенсации неудачного расчета
type RoundRepository interface {
	CreateRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, id string) (*model.Round, error)
	ListRoundsByPlayer(ctx context.Context, token string) ([]model.Round, error)

	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	RemoveTransaction(ctx context.Context, id string) error
	ListTransactionsByRound(ctx context.Context, roundID string) ([]model.Transaction, error)
}
