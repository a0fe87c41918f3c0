package spin

import (
	"errors"
	"net/http"
	"strings"

	dto "slot_backend/internal/api/dto/spin"
	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/logger"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SpinService
}

type Handler struct {
	serv service.SpinService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin рассчитывает один раунд: ставка, три символа, выигрыш, баланс
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		writeSpinError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Player выдает токен и баланс. Токен берется из bearer-заголовка,
// без него выполняется аутентификация у кошелька
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)

	data, err := h.serv.Player(r.Context(), token)
	if err != nil {
		logger.L().Error("player handler: " + err.Error())
		resp.WriteJSONError(w, http.StatusInternalServerError, "player error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*data))
}

// Config отдает статический снимок игровой конфигурации
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.GameData()))
}

// writeSpinError сопоставляет класс ошибки расчета с HTTP-статусом
func writeSpinError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidBet):
		resp.WriteJSONError(w, http.StatusBadRequest, "Invalid bet")
	case errors.Is(err, service.ErrUnauthenticated):
		resp.WriteJSONError(w, http.StatusUnauthorized, "Missing token")
	default:
		logger.L().Error("spin handler: " + err.Error())
		resp.WriteJSONError(w, http.StatusInternalServerError, "spin error")
	}
}

// bearerToken достает токен из заголовка вида "Authorization: token <t>"
func bearerToken(r *http.Request) string {
	raw := r.Header.Get("Authorization")
	if raw == "" {
		return ""
	}

	parts := strings.SplitN(raw, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "token") {
		return strings.TrimSpace(parts[1])
	}

	return strings.TrimSpace(raw)
}
