package replay

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

type fakeRoundRepo struct {
	rounds map[string]model.Round
	txs    map[string][]model.Transaction
}

func (r *fakeRoundRepo) CreateRound(_ context.Context, round *model.Round) error {
	r.rounds[round.ID] = *round
	return nil
}

func (r *fakeRoundRepo) GetRound(_ context.Context, id string) (*model.Round, error) {
	round, ok := r.rounds[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &round, nil
}

func (r *fakeRoundRepo) ListRoundsByPlayer(_ context.Context, token string) ([]model.Round, error) {
	var result []model.Round
	for _, round := range r.rounds {
		if round.PlayerToken == token {
			result = append(result, round)
		}
	}
	return result, nil
}

func (r *fakeRoundRepo) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	r.txs[tx.RoundID] = append(r.txs[tx.RoundID], *tx)
	return nil
}

func (r *fakeRoundRepo) RemoveTransaction(_ context.Context, _ string) error {
	return nil
}

func (r *fakeRoundRepo) ListTransactionsByRound(_ context.Context, roundID string) ([]model.Transaction, error) {
	return r.txs[roundID], nil
}

func newFakeRepo() *fakeRoundRepo {
	return &fakeRoundRepo{
		rounds: make(map[string]model.Round),
		txs:    make(map[string][]model.Transaction),
	}
}

// Повтор возвращает раунд ровно в том виде, в каком он был записан,
// без пересчета выигрыша
func TestGetRound(t *testing.T) {
	repo := newFakeRepo()
	recorded := model.Round{
		ID:          "round-1",
		PlayerToken: "player",
		Bet:         decimal.NewFromInt(2),
		Symbols:     [3]game.Symbol{game.SymbolCherry, game.SymbolCherry, game.SymbolCherry},
		Win:         decimal.NewFromInt(16),
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateRound(context.Background(), &recorded))

	s := NewReplayService(repo)

	round, err := s.GetRound(context.Background(), "round-1")
	require.NoError(t, err)

	assert.Equal(t, recorded, *round)
}

func TestGetRoundNotFound(t *testing.T) {
	s := NewReplayService(newFakeRepo())

	_, err := s.GetRound(context.Background(), "ghost")
	assert.ErrorIs(t, err, service.ErrRoundNotFound)
}

func TestListTransactions(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.CreateRound(context.Background(), &model.Round{ID: "round-1"}))
	require.NoError(t, repo.CreateTransaction(context.Background(), &model.Transaction{
		ID: "tx-1", RoundID: "round-1", Kind: model.TransactionDebit, Amount: decimal.NewFromInt(2),
	}))

	s := NewReplayService(repo)

	txs, err := s.ListTransactions(context.Background(), "round-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, model.TransactionDebit, txs[0].Kind)
}

func TestListPlayerRounds(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.CreateRound(context.Background(), &model.Round{ID: "round-1", PlayerToken: "player"}))
	require.NoError(t, repo.CreateRound(context.Background(), &model.Round{ID: "round-2", PlayerToken: "other"}))

	s := NewReplayService(repo)

	rounds, err := s.ListPlayerRounds(context.Background(), "player")
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "round-1", rounds[0].ID)
}

func TestListTransactionsUnknownRound(t *testing.T) {
	s := NewReplayService(newFakeRepo())

	_, err := s.ListTransactions(context.Background(), "ghost")
	assert.ErrorIs(t, err, service.ErrRoundNotFound)
}
