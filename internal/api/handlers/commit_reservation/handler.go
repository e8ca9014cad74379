package commit_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	commitReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/commit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не удалось определить пользователя"
	msgInvalidInput       = "некорректные входные данные"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgNoActiveSelection  = "сначала выберите парковку и место"
	msgSpotTaken          = "место уже занято"
	msgCommitInProgress   = "коммит сессии уже выполняется"
	msgSessionCommitted   = "сессия уже завершена"
)

type Handler struct {
	useCase CommitReservationUseCase
	logger  Logger
}

func NewHandler(useCase CommitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{sessionId}/commit - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CommitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/commit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &commitReservation.Request{
		SessionID:     sessionID,
		UserID:        userID,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		switch {
		case errors.Is(err, commitReservation.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{sessionId}/commit - Invalid input: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, commitReservation.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/commit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, commitReservation.ErrNoActiveSelection):
			h.logger.Warn("POST /sessions/{sessionId}/commit - No active selection: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoActiveSelection)

		case errors.Is(err, commitReservation.ErrSpotAlreadyReserved):
			h.logger.Warn("POST /sessions/{sessionId}/commit - Spot already reserved: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSpotTaken)

		case errors.Is(err, commitReservation.ErrCommitInProgress):
			h.logger.Warn("POST /sessions/{sessionId}/commit - Commit already in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCommitInProgress)

		case errors.Is(err, commitReservation.ErrSessionCommitted):
			h.logger.Warn("POST /sessions/{sessionId}/commit - Session already committed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCommitted)

		default:
			h.logger.Error("POST /sessions/{sessionId}/commit - Failed to commit reservation: session_id=%s, user_id=%s, error=%v",
				sessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/commit - Reservation committed: reservation_id=%s, session_id=%s, user_id=%s",
		result.ID, sessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
