package converter

import (
	"github.com/shopspring/decimal"

	dto "slot_backend/internal/api/dto/spin"
	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

func ToSpinRequest(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		Token: req.Token,
		Bet:   req.Bet,
	}
}

func ToSpinResponse(result model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		RoundID: result.RoundID,
		Symbols: toSymbolNames(result.Symbols[:]),
		Win:     result.Win,
		Balance: result.Balance,
	}
}

func ToPlayerResponse(data model.PlayerData) dto.PlayerResponse {
	return dto.PlayerResponse{
		Token:   data.Token,
		Balance: data.Balance,
	}
}

func ToConfigResponse(data model.GameData) dto.ConfigResponse {
	probabilities := make(map[string]float64, len(data.Symbols))
	payouts := make(map[string]decimal.Decimal, len(data.Symbols))
	for _, s := range data.Symbols {
		probabilities[s.String()] = s.Probability()
		payouts[s.String()] = s.Multiplier()
	}

	return dto.ConfigResponse{
		Symbols:       toSymbolNames(data.Symbols),
		Probabilities: probabilities,
		Payouts:       payouts,
		Bets:          data.Bets,
		Operator:      data.Operator,
	}
}

func toSymbolNames(symbols []game.Symbol) []string {
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.String()
	}
	return names
}
