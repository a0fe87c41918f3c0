package replay

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/logger"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ReplayService
}

type Handler struct {
	serv service.ReplayService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Round отдает записанный раунд как он был рассчитан, без пересчета
func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	roundID := chi.URLParam(r, "roundID")

	round, err := h.serv.GetRound(r.Context(), roundID)
	if err != nil {
		writeReplayError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Transactions отдает движения денег раунда для аудита
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	roundID := chi.URLParam(r, "roundID")

	txs, err := h.serv.ListTransactions(r.Context(), roundID)
	if err != nil {
		writeReplayError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponses(txs))
}

// PlayerRounds отдает историю раундов игрока, от новых к старым
func (h *Handler) PlayerRounds(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	rounds, err := h.serv.ListPlayerRounds(r.Context(), token)
	if err != nil {
		writeReplayError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponses(rounds))
}

func writeReplayError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrRoundNotFound) {
		resp.WriteJSONError(w, http.StatusNotFound, "Not found")
		return
	}

	logger.L().Error("replay handler: " + err.Error())
	resp.WriteJSONError(w, http.StatusInternalServerError, "replay error")
}
