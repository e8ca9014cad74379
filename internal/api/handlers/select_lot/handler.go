package select_lot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/infra/catalog"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLotIDRequired      = "lotId обязателен"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgLotNotFound        = "парковка не найдена"
	msgSessionCommitted   = "сессия уже завершена"
	msgCommitInProgress   = "коммит сессии уже выполняется"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/lot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req SelectLotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/lot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.LotID == "" {
		handlers.RespondBadRequest(w, msgLotIDRequired)
		return
	}

	sess, err := h.sessions.SelectLot(sessionID, req.LotID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/lot - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, catalog.ErrLotNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/lot - Lot not found: lot_id=%s", req.LotID)
			handlers.RespondNotFound(w, msgLotNotFound)

		case errors.Is(err, session.ErrSessionCommitted):
			h.logger.Warn("POST /sessions/{sessionId}/lot - Session already committed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCommitted)

		case errors.Is(err, session.ErrCommitInProgress):
			h.logger.Warn("POST /sessions/{sessionId}/lot - Commit in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCommitInProgress)

		default:
			h.logger.Error("POST /sessions/{sessionId}/lot - Failed to select lot: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/lot - Lot selected: session_id=%s, lot_id=%s",
		sessionID, req.LotID)
	handlers.RespondJSON(w, http.StatusOK, session.NewView(sess))
}
