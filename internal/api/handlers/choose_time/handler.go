package choose_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидаются YYYY-MM-DD и HH:MM"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgNoSpotSelected     = "сначала выберите место"
	msgInvalidDuration    = "длительность должна быть от 1 до 24 часов"
	msgPastTime           = "время начала не может быть в прошлом"
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

// Handle POST /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req ChooseTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := req.Start()
	if err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/time - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	sess, err := h.sessions.ChooseTime(sessionID, start, req.DurationHours)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrNoSpotSelected):
			h.logger.Warn("POST /sessions/{sessionId}/time - No spot selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoSpotSelected)

		case errors.Is(err, session.ErrInvalidDuration):
			h.logger.Warn("POST /sessions/{sessionId}/time - Invalid duration: session_id=%s, hours=%d",
				sessionID, req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, session.ErrPastReservationTime):
			h.logger.Warn("POST /sessions/{sessionId}/time - Start time in the past: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, session.ErrSessionCommitted):
			h.logger.Warn("POST /sessions/{sessionId}/time - Session already committed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCommitted)

		case errors.Is(err, session.ErrCommitInProgress):
			h.logger.Warn("POST /sessions/{sessionId}/time - Commit in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCommitInProgress)

		default:
			h.logger.Error("POST /sessions/{sessionId}/time - Failed to choose time: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/time - Time chosen: session_id=%s, start=%s, hours=%d",
		sessionID, start.Format("2006-01-02 15:04"), req.DurationHours)
	handlers.RespondJSON(w, http.StatusOK, session.NewView(sess))
}
