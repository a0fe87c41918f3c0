package spin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// Суммы в JSON сериализуются числами, как в боевом процессе
func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

type fakeSpinService struct {
	spinErr   error
	playerErr error
	gotToken  string
}

func (s *fakeSpinService) Spin(_ context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	if s.spinErr != nil {
		return nil, s.spinErr
	}
	return &model.SpinResult{
		RoundID: "round-1",
		Symbols: [3]game.Symbol{game.SymbolOrange, game.SymbolOrange, game.SymbolOrange},
		Win:     req.Bet,
		Balance: decimal.NewFromInt(100),
	}, nil
}

func (s *fakeSpinService) Player(_ context.Context, token string) (*model.PlayerData, error) {
	if s.playerErr != nil {
		return nil, s.playerErr
	}
	s.gotToken = token
	if token == "" {
		token = "fresh-token"
	}
	return &model.PlayerData{Token: token, Balance: decimal.NewFromInt(100)}, nil
}

func (s *fakeSpinService) GameData() model.GameData {
	return model.GameData{
		Symbols:  game.Symbols[:],
		Bets:     []decimal.Decimal{decimal.NewFromInt(1)},
		Operator: "Test Operator",
	}
}

func TestSpinHandlerOK(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeSpinService{}})

	req := httptest.NewRequest(http.MethodPost, "/spin", strings.NewReader(`{"bet": 1, "token": "p"}`))
	rec := httptest.NewRecorder()

	h.Spin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"roundId":"round-1","symbols":["🍊","🍊","🍊"],"win":1,"balance":100}`,
		rec.Body.String())
}

func TestSpinHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid bet is 400", service.ErrInvalidBet, http.StatusBadRequest},
		{"missing token is 401", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"wallet failure is 500", service.ErrWalletUnavailable, http.StatusInternalServerError},
		{"ledger failure is 500", service.ErrLedgerWriteFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(HandlerDeps{Serv: &fakeSpinService{spinErr: tt.err}})

			req := httptest.NewRequest(http.MethodPost, "/spin", strings.NewReader(`{"bet": 1, "token": "p"}`))
			rec := httptest.NewRecorder()

			h.Spin(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSpinHandlerBadJSON(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeSpinService{}})

	req := httptest.NewRequest(http.MethodPost, "/spin", strings.NewReader(`{bet}`))
	rec := httptest.NewRecorder()

	h.Spin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerHandlerBearerToken(t *testing.T) {
	serv := &fakeSpinService{}
	h := NewHandler(HandlerDeps{Serv: serv})

	req := httptest.NewRequest(http.MethodGet, "/player", nil)
	req.Header.Set("Authorization", "token abc-123")
	rec := httptest.NewRecorder()

	h.Player(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", serv.gotToken)
}

func TestPlayerHandlerNoToken(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeSpinService{}})

	req := httptest.NewRequest(http.MethodGet, "/player", nil)
	rec := httptest.NewRecorder()

	h.Player(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-token")
}

func TestConfigHandler(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeSpinService{}})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()

	h.Config(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "🍊")
	assert.Contains(t, body, `"operator":"Test Operator"`)
	assert.Contains(t, body, `"probabilities"`)
	assert.Contains(t, body, `"payouts"`)
}
