package converter

import (
	dto "slot_backend/internal/api/dto/replay"
	"slot_backend/internal/model"
)

func ToRoundResponse(round model.Round) dto.RoundResponse {
	return dto.RoundResponse{
		ID:          round.ID,
		PlayerToken: round.PlayerToken,
		Bet:         round.Bet,
		Symbols:     toSymbolNames(round.Symbols[:]),
		Win:         round.Win,
		CreatedAt:   round.CreatedAt,
	}
}

func ToRoundResponses(rounds []model.Round) []dto.RoundResponse {
	result := make([]dto.RoundResponse, len(rounds))
	for i, round := range rounds {
		result[i] = ToRoundResponse(round)
	}
	return result
}

func ToTransactionResponses(txs []model.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = dto.TransactionResponse{
			ID:          tx.ID,
			RoundID:     tx.RoundID,
			PlayerToken: tx.PlayerToken,
			Kind:        string(tx.Kind),
			Amount:      tx.Amount,
			CreatedAt:   tx.CreatedAt,
		}
	}
	return result
}
