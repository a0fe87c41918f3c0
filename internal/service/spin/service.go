package spin

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"slot_backend/internal/config"
	"slot_backend/internal/game"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	"slot_backend/internal/wallet"
)

type serv struct {
	gameCfg    config.GameConfig
	walletCfg  config.WalletConfig
	wallet     wallet.Wallet
	playerRepo repository.PlayerRepository
	roundRepo  repository.RoundRepository
	txManager  trm.Manager
	log        *zap.Logger

	// Источник символов, подменяется в тестах
	draw func() game.Symbol
}

// NewSpinService Создать сервис расчета раундов.
// Кошелек передается как зависимость, а не глобальное состояние:
// в тестах его подменяет реализация в памяти
func NewSpinService(
	gameCfg config.GameConfig,
	walletCfg config.WalletConfig,
	w wallet.Wallet,
	playerRepo repository.PlayerRepository,
	roundRepo repository.RoundRepository,
	txManager trm.Manager,
	log *zap.Logger,
) service.SpinService {
	return &serv{
		gameCfg:    gameCfg,
		walletCfg:  walletCfg,
		wallet:     w,
		playerRepo: playerRepo,
		roundRepo:  roundRepo,
		txManager:  txManager,
		log:        log,
		draw:       game.Draw,
	}
}
