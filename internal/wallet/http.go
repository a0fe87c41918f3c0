package wallet

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"slot_backend/internal/metrics"
)

const (
	// Заголовок с HMAC-подписью тела запроса
	signatureHeader = "x-server-authorization"
	authHeader      = "Authorization"
)

// HTTPWallet - боевая реализация кошелька поверх HTTP.
// Каждое тело запроса подписывается HMAC-SHA256 общим секретом;
// операции по конкретному игроку дополнительно несут его токен
type HTTPWallet struct {
	baseURL string
	secret  string
	timeout time.Duration
	client  *http.Client
}

func NewHTTPWallet(baseURL, secret string, timeout time.Duration) *HTTPWallet {
	return &HTTPWallet{
		baseURL: baseURL,
		secret:  secret,
		timeout: timeout,
		client:  &http.Client{},
	}
}

func (w *HTTPWallet) Authenticate(ctx context.Context, secret, operator string) (*AuthResult, error) {
	body := map[string]string{
		"operator": operator,
		"key":      secret,
	}

	var result AuthResult
	err := w.call(ctx, http.MethodPost, "/authenticate", body, "", &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (w *HTTPWallet) Balance(ctx context.Context, token string) (decimal.Decimal, error) {
	// Тело пустое, игрок определяется токеном в заголовке
	body := map[string]string{}

	var result balanceResponse
	err := w.call(ctx, http.MethodPost, "/balance", body, token, &result)
	if err != nil {
		return decimal.Zero, err
	}

	return result.Balance, nil
}

func (w *HTTPWallet) Transaction(ctx context.Context, req TransactionRequest) (decimal.Decimal, error) {
	var result balanceResponse
	err := w.call(ctx, http.MethodPut, "/transaction", req, req.Token, &result)
	if err != nil {
		return decimal.Zero, err
	}

	return result.Balance, nil
}

func (w *HTTPWallet) Cancel(ctx context.Context, req TransactionRequest) (decimal.Decimal, error) {
	var result balanceResponse
	err := w.call(ctx, http.MethodDelete, "/cancel", req, req.Token, &result)
	if err != nil {
		return decimal.Zero, err
	}

	return result.Balance, nil
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// sign считает HMAC-SHA256 от тела запроса общим секретом
func (w *HTTPWallet) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(w.secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// call выполняет один подписанный запрос к кошельку с таймаутом
func (w *HTTPWallet) call(ctx context.Context, method, path string, body any, token string, out any) (err error) {
	started := time.Now()
	op := strings.TrimPrefix(path, "/")
	defer func() {
		result := "success"
		if err != nil {
			result = "fail"
		}
		metrics.RecordWalletCall(op, result, started)
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, w.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, w.sign(payload))
	if token != "" {
		req.Header.Set(authHeader, "token "+token)
	}

	res, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		data, _ := io.ReadAll(res.Body)
		return fmt.Errorf("wallet %s %s: status %d: %s", method, path, res.StatusCode, string(data))
	}

	return json.NewDecoder(res.Body).Decode(out)
}
