package get_user_reservations

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
)

type Handler struct {
	ledger ReservationLedger
	logger Logger
}

func NewHandler(ledger ReservationLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	if userID == "" {
		h.logger.Warn("GET /users/{userId}/reservations - Empty user ID")
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	reservations := h.ledger.ListByUser(userID)
	response := BuildResponse(reservations, time.Now())

	h.logger.Info("GET /users/{userId}/reservations - Reservations retrieved: user_id=%s, active=%d, expired=%d",
		userID, len(response.Active), len(response.Expired))
	handlers.RespondJSON(w, http.StatusOK, response)
}
