package service

import (
	"context"

	"slot_backend/internal/model"
)

type SpinService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	Player(ctx context.Context, token string) (*model.PlayerData, error)
	GameData() model.GameData
}

type ReplayService interface {
	GetRound(ctx context.Context, roundID string) (*model.Round, error)
	ListTransactions(ctx context.Context, roundID string) ([]model.Transaction, error)
	ListPlayerRounds(ctx context.Context, token string) ([]model.Round, error)
}
