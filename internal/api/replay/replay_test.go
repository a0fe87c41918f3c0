package replay

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

type fakeReplayService struct {
	round *model.Round
	txs   []model.Transaction
}

func (s *fakeReplayService) GetRound(_ context.Context, roundID string) (*model.Round, error) {
	if s.round == nil || s.round.ID != roundID {
		return nil, fmt.Errorf("%w: %s", service.ErrRoundNotFound, roundID)
	}
	return s.round, nil
}

func (s *fakeReplayService) ListTransactions(_ context.Context, roundID string) ([]model.Transaction, error) {
	if s.round == nil || s.round.ID != roundID {
		return nil, fmt.Errorf("%w: %s", service.ErrRoundNotFound, roundID)
	}
	return s.txs, nil
}

func (s *fakeReplayService) ListPlayerRounds(_ context.Context, token string) ([]model.Round, error) {
	if s.round != nil && s.round.PlayerToken == token {
		return []model.Round{*s.round}, nil
	}
	return nil, nil
}

func newRouter(serv service.ReplayService) chi.Router {
	h := NewHandler(HandlerDeps{Serv: serv})

	r := chi.NewRouter()
	r.Get("/replay/{roundID}", h.Round)
	r.Get("/replay/{roundID}/transactions", h.Transactions)
	r.Get("/player/{token}/rounds", h.PlayerRounds)
	return r
}

func TestRoundHandler(t *testing.T) {
	router := newRouter(&fakeReplayService{
		round: &model.Round{
			ID:          "round-1",
			PlayerToken: "player",
			Bet:         decimal.NewFromInt(2),
			Symbols:     [3]game.Symbol{game.SymbolBell, game.SymbolBell, game.SymbolBell},
			Win:         decimal.NewFromInt(40),
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/replay/round-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"id":"round-1"`)
	assert.Contains(t, body, "🔔")
}

func TestRoundHandlerNotFound(t *testing.T) {
	router := newRouter(&fakeReplayService{})

	req := httptest.NewRequest(http.MethodGet, "/replay/ghost", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransactionsHandler(t *testing.T) {
	router := newRouter(&fakeReplayService{
		round: &model.Round{ID: "round-1"},
		txs: []model.Transaction{
			{ID: "tx-1", RoundID: "round-1", Kind: model.TransactionDebit, Amount: decimal.NewFromInt(2)},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/replay/round-1/transactions", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"debit"`)
}

func TestPlayerRoundsHandler(t *testing.T) {
	router := newRouter(&fakeReplayService{
		round: &model.Round{ID: "round-1", PlayerToken: "player"},
	})

	req := httptest.NewRequest(http.MethodGet, "/player/player/rounds", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"round-1"`)
}

func TestTransactionsHandlerNotFound(t *testing.T) {
	router := newRouter(&fakeReplayService{})

	req := httptest.NewRequest(http.MethodGet, "/replay/ghost/transactions", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
