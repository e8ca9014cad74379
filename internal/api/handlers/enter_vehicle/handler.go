package enter_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgSessionNotFound      = "сессия бронирования не найдена"
	msgTimeNotChosen        = "сначала выберите место и время"
	msgInvalidVehicleType   = "некорректный тип транспорта"
	msgInvalidVehicleNumber = "некорректный регистрационный номер, ожидается формат KA01AB1234"
	msgSessionCommitted     = "сессия уже завершена"
	msgCommitInProgress     = "коммит сессии уже выполняется"
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

// Handle POST /api/v1/sessions/{sessionId}/vehicle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req EnterVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/vehicle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.sessions.EnterVehicle(sessionID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/vehicle - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrNoSpotSelected):
			h.logger.Warn("POST /sessions/{sessionId}/vehicle - Time not chosen yet: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgTimeNotChosen)

		case errors.Is(err, session.ErrInvalidVehicleType):
			h.logger.Warn("POST /sessions/{sessionId}/vehicle - Invalid vehicle type: session_id=%s, type=%q",
				sessionID, req.VehicleType)
			handlers.RespondBadRequest(w, msgInvalidVehicleType)

		case errors.Is(err, session.ErrInvalidVehicleNumber):
			h.logger.Warn("POST /sessions/{sessionId}/vehicle - Invalid vehicle number: session_id=%s, number=%q",
				sessionID, req.VehicleNumber)
			handlers.RespondBadRequest(w, msgInvalidVehicleNumber)

		case errors.Is(err, session.ErrSessionCommitted):
			h.logger.Warn("POST /sessions/{sessionId}/vehicle - Session already committed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCommitted)

		case errors.Is(err, session.ErrCommitInProgress):
			h.logger.Warn("POST /sessions/{sessionId}/vehicle - Commit in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCommitInProgress)

		default:
			h.logger.Error("POST /sessions/{sessionId}/vehicle - Failed to enter vehicle: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/vehicle - Vehicle entered: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, session.NewView(sess))
}
