package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"slot_backend/internal/config"
)

type gameYAML struct {
	Game struct {
		Operator string   `yaml:"operator"`
		Bets     []string `yaml:"bets"`
	} `yaml:"game"`
}

type gameConfig struct {
	bets     []decimal.Decimal
	operator string
}

// NewGameConfigFromYAML читает допустимые ставки и имя оператора из YAML.
// Список ставок закрытый: все прочие размеры отклоняются при расчете
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Game.Bets) == 0 {
		return nil, errors.New("game config: empty bets list")
	}
	if len(parsed.Game.Operator) == 0 {
		return nil, errors.New("game config: operator not set")
	}

	bets := make([]decimal.Decimal, 0, len(parsed.Game.Bets))
	for _, raw := range parsed.Game.Bets {
		bet, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("game config: invalid bet %q: %w", raw, err)
		}
		if !bet.IsPositive() {
			return nil, fmt.Errorf("game config: bet %q must be positive", raw)
		}
		bets = append(bets, bet)
	}

	return &gameConfig{
		bets:     bets,
		operator: parsed.Game.Operator,
	}, nil
}

func (cfg *gameConfig) Bets() []decimal.Decimal {
	return cfg.bets
}

func (cfg *gameConfig) Operator() string {
	return cfg.operator
}
