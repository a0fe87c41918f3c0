package spin

import (
	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

// GameData отдает статический снимок игровой конфигурации:
// символы с их таблицами, допустимые ставки и имя оператора
func (s *serv) GameData() model.GameData {
	return model.GameData{
		Symbols:  game.Symbols[:],
		Bets:     s.gameCfg.Bets(),
		Operator: s.gameCfg.Operator(),
	}
}
