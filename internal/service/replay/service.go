package replay

import (
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
)

type serv struct {
	roundRepo repository.RoundRepository
}

// NewReplayService Создать сервис повтора раундов.
// Только чтение: выигрыш никогда не пересчитывается, отдается записанное
func NewReplayService(roundRepo repository.RoundRepository) service.ReplayService {
	return &serv{
		roundRepo: roundRepo,
	}
}
