package select_spot

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
	msgSpotIDRequired     = "spotId обязателен"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgNoLotSelected      = "сначала выберите парковку"
	msgSpotNotFound       = "место не найдено"
	msgSpotUnavailable    = "место недоступно"
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

// Handle POST /api/v1/sessions/{sessionId}/spot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req SelectSpotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/spot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.SpotID == "" {
		handlers.RespondBadRequest(w, msgSpotIDRequired)
		return
	}

	sess, err := h.sessions.SelectSpot(sessionID, req.SpotID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/spot - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrNoLotSelected):
			h.logger.Warn("POST /sessions/{sessionId}/spot - No lot selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoLotSelected)

		case errors.Is(err, catalog.ErrSpotNotFound), errors.Is(err, catalog.ErrLotNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/spot - Spot not found: session_id=%s, spot_id=%s",
				sessionID, req.SpotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, session.ErrSpotUnavailable):
			h.logger.Warn("POST /sessions/{sessionId}/spot - Spot unavailable: session_id=%s, spot_id=%s",
				sessionID, req.SpotID)
			handlers.RespondError(w, http.StatusConflict, msgSpotUnavailable)

		case errors.Is(err, session.ErrSessionCommitted):
			h.logger.Warn("POST /sessions/{sessionId}/spot - Session already committed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCommitted)

		case errors.Is(err, session.ErrCommitInProgress):
			h.logger.Warn("POST /sessions/{sessionId}/spot - Commit in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCommitInProgress)

		default:
			h.logger.Error("POST /sessions/{sessionId}/spot - Failed to select spot: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/spot - Spot selection updated: session_id=%s, spot_id=%s, state=%s",
		sessionID, req.SpotID, sess.State)
	handlers.RespondJSON(w, http.StatusOK, session.NewView(sess))
}
