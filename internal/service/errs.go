package service

import "errors"

// Классы ошибок расчета. Обработчики сопоставляют их с HTTP-статусами
var (
	// Ставка вне списка допустимых
	ErrInvalidBet = errors.New("invalid bet")
	// Токен игрока отсутствует
	ErrUnauthenticated = errors.New("missing token")
	// Внешний кошелек недоступен или ответил ошибкой
	ErrWalletUnavailable = errors.New("wallet unavailable")
	// Запись в журнал не прошла после успешного внешнего движения денег
	ErrLedgerWriteFailed = errors.New("ledger write failed")
	// Раунд с таким id не записан
	ErrRoundNotFound = errors.New("round not found")
)
