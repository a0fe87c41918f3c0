package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// GetRound возвращает записанный раунд в том виде, в каком он был рассчитан
func (s *serv) GetRound(ctx context.Context, roundID string) (*model.Round, error) {
	round, err := s.roundRepo.GetRound(ctx, roundID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", service.ErrRoundNotFound, roundID)
		}
		return nil, err
	}

	return round, nil
}

// ListTransactions возвращает движения денег раунда для аудита
func (s *serv) ListTransactions(ctx context.Context, roundID string) ([]model.Transaction, error) {
	// Сначала проверяем, что раунд существует
	_, err := s.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	return s.roundRepo.ListTransactionsByRound(ctx, roundID)
}

// ListPlayerRounds возвращает историю раундов игрока для аудита
func (s *serv) ListPlayerRounds(ctx context.Context, token string) ([]model.Round, error) {
	return s.roundRepo.ListRoundsByPlayer(ctx, token)
}
