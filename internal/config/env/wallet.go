package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"slot_backend/internal/config"
)

const (
	walletBaseURLName = "WALLET_BASE_URL"
	walletSecretName  = "WALLET_SECRET"
	walletTimeoutName = "WALLET_TIMEOUT"

	defaultWalletTimeout = 5 * time.Second
)

type walletConfig struct {
	baseURL string
	secret  string
	timeout time.Duration
}

func NewWalletConfig() (config.WalletConfig, error) {
	baseURL := os.Getenv(walletBaseURLName)
	if len(baseURL) == 0 {
		return nil, errors.New("wallet base url not found")
	}

	secret := os.Getenv(walletSecretName)
	if len(secret) == 0 {
		return nil, errors.New("wallet secret not found")
	}

	timeout := defaultWalletTimeout
	if raw := os.Getenv(walletTimeoutName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet timeout: %w", err)
		}
		timeout = parsed
	}

	return &walletConfig{
		baseURL: baseURL,
		secret:  secret,
		timeout: timeout,
	}, nil
}

func (cfg *walletConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *walletConfig) Secret() string {
	return cfg.secret
}

func (cfg *walletConfig) Timeout() time.Duration {
	return cfg.timeout
}
