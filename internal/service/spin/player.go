package spin

import (
	"context"
	"fmt"

	"slot_backend/internal/model"
	"slot_backend/internal/service"
)

// Player возвращает токен и актуальный баланс игрока.
// Без токена выполняется аутентификация у кошелька и выдается новый.
// Побочный эффект: токен регистрируется за оператором в таблице игроков
func (s *serv) Player(ctx context.Context, token string) (*model.PlayerData, error) {
	if token == "" {
		auth, err := s.wallet.Authenticate(ctx, s.walletCfg.Secret(), s.gameCfg.Operator())
		if err != nil {
			return nil, fmt.Errorf("%w: authenticate: %v", service.ErrWalletUnavailable, err)
		}
		token = auth.Token
	}

	err := s.playerRepo.UpsertPlayer(ctx, &model.Player{Token: token, Operator: s.gameCfg.Operator()})
	if err != nil {
		return nil, fmt.Errorf("%w: player record: %v", service.ErrLedgerWriteFailed, err)
	}

	balance, err := s.wallet.Balance(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: balance: %v", service.ErrWalletUnavailable, err)
	}

	return &model.PlayerData{Token: token, Balance: balance}, nil
}
