package spin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"slot_backend/internal/game"
	"slot_backend/internal/metrics"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/internal/wallet"
)

// Spin выполняет полный расчет одного раунда: дебет ставки во внешнем кошельке,
// генерация символов, запись раунда в журнал и кредит выигрыша.
// Шаги строго последовательны; повторов при сбоях нет - каждый вызов
// самодостаточен и может быть повторен вызывающим с новым id раунда
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	started := time.Now()

	// Валидация ставки до любых внешних вызовов
	if !s.betAllowed(req.Bet) {
		metrics.RecordSpin("invalid_bet", started)
		return nil, service.ErrInvalidBet
	}
	if req.Token == "" {
		metrics.RecordSpin("unauthenticated", started)
		return nil, service.ErrUnauthenticated
	}

	roundID := uuid.NewString()
	debitTx := model.Transaction{
		ID:          uuid.NewString(),
		RoundID:     roundID,
		PlayerToken: req.Token,
		Kind:        model.TransactionDebit,
		Amount:      req.Bet,
		CreatedAt:   time.Now().UTC(),
	}

	// Списание ставки во внешнем кошельке.
	// Деньги двигаются до генерации символов, независимо от исхода раунда
	if _, err := s.wallet.Transaction(ctx, toWalletRequest(debitTx)); err != nil {
		metrics.RecordSpin("wallet_error", started)
		return nil, fmt.Errorf("%w: debit for round %s: %v", service.ErrWalletUnavailable, roundID, err)
	}

	// Фиксируем игрока и дебетовую запись одной транзакцией БД
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.playerRepo.UpsertPlayer(txCtx, &model.Player{Token: req.Token, Operator: s.gameCfg.Operator()}); err != nil {
			return err
		}
		return s.roundRepo.CreateTransaction(txCtx, &debitTx)
	})
	if err != nil {
		// Дебет прошел внешне, но не записан локально - отменяем его у кошелька,
		// чтобы деньги не остались удержанными без записи в журнале
		s.cancelWalletTx(ctx, debitTx)
		metrics.RecordSpin("ledger_error", started)
		return nil, fmt.Errorf("%w: debit record for round %s: %v", service.ErrLedgerWriteFailed, roundID, err)
	}

	// Генерация трех символов и расчет выигрыша
	symbols := [3]game.Symbol{s.draw(), s.draw(), s.draw()}
	win := game.Evaluate(symbols, req.Bet)

	round := model.Round{
		ID:          roundID,
		PlayerToken: req.Token,
		Bet:         req.Bet,
		Symbols:     symbols,
		Win:         win,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.roundRepo.CreateRound(ctx, &round); err != nil {
		// Раунд не записан: результат генерации отбрасывается.
		// Отменяем внешний дебет и убираем осиротевшую дебетовую запись,
		// чтобы от неудачного расчета не осталось ни строк, ни удержанных денег
		s.cancelWalletTx(ctx, debitTx)
		if rmErr := s.roundRepo.RemoveTransaction(ctx, debitTx.ID); rmErr != nil {
			s.log.Error("failed to remove orphan debit record",
				zap.String("round_id", roundID),
				zap.String("transaction_id", debitTx.ID),
				zap.Error(rmErr))
		}
		metrics.RecordSpin("ledger_error", started)
		return nil, fmt.Errorf("%w: round %s: %v", service.ErrLedgerWriteFailed, roundID, err)
	}

	if win.IsPositive() {
		creditTx := model.Transaction{
			ID:          uuid.NewString(),
			RoundID:     roundID,
			PlayerToken: req.Token,
			Kind:        model.TransactionCredit,
			Amount:      win,
			CreatedAt:   time.Now().UTC(),
		}

		if _, err := s.wallet.Transaction(ctx, toWalletRequest(creditTx)); err != nil {
			// По ошибке вызова не определить, применился ли кредит у кошелька,
			// а слепая отмена могла бы развернуть легитимную выплату.
			// Раунд уже записан: оператор сверяет выплату по id раунда
			s.log.Error("credit was not applied for settled round",
				zap.String("round_id", roundID),
				zap.Error(err))
			metrics.RecordSpin("wallet_error", started)
			return nil, fmt.Errorf("%w: credit for round %s: %v", service.ErrWalletUnavailable, roundID, err)
		}

		if err := s.roundRepo.CreateTransaction(ctx, &creditTx); err != nil {
			// Кредит применился внешне, но не записан локально - откатываем его
			s.cancelWalletTx(ctx, creditTx)
			metrics.RecordSpin("ledger_error", started)
			return nil, fmt.Errorf("%w: credit record for round %s: %v", service.ErrLedgerWriteFailed, roundID, err)
		}
	}

	// Актуальный баланс всегда берется у кошелька, локально он не хранится
	balance, err := s.wallet.Balance(ctx, req.Token)
	if err != nil {
		metrics.RecordSpin("wallet_error", started)
		return nil, fmt.Errorf("%w: balance for round %s: %v", service.ErrWalletUnavailable, roundID, err)
	}

	metrics.RecordSpin("success", started)

	return &model.SpinResult{
		RoundID: roundID,
		Symbols: symbols,
		Win:     win,
		Balance: balance,
	}, nil
}

// betAllowed проверяет ставку по списку допустимых размеров
func (s *serv) betAllowed(bet decimal.Decimal) bool {
	for _, allowed := range s.gameCfg.Bets() {
		if allowed.Equal(bet) {
			return true
		}
	}
	return false
}

// cancelWalletTx разворачивает уже примененное внешнее движение денег.
// Сбой самой отмены только логируется: ошибку расчета он не перекрывает
func (s *serv) cancelWalletTx(ctx context.Context, tx model.Transaction) {
	if _, err := s.wallet.Cancel(ctx, toWalletRequest(tx)); err != nil {
		s.log.Error("wallet cancel failed, manual reconciliation required",
			zap.String("round_id", tx.RoundID),
			zap.String("transaction_id", tx.ID),
			zap.String("kind", string(tx.Kind)),
			zap.Error(err))
	}
}

func toWalletRequest(tx model.Transaction) wallet.TransactionRequest {
	return wallet.TransactionRequest{
		ID:        tx.ID,
		RoundID:   tx.RoundID,
		PlayerID:  tx.PlayerToken,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
		Token:     tx.PlayerToken,
	}
}
