package create_session

import (
	"io"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

const (
	msgMissingUserID = "не удалось определить пользователя"
)

type Handler struct {
	sessions SessionManager
	identity IdentityStore
	logger   Logger
}

func NewHandler(sessions SessionManager, identity IdentityStore, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		identity: identity,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: имя и email нужны только для идентичности
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && err != io.EOF {
		h.logger.Warn("POST /sessions - Ignoring malformed body: %v", err)
	}

	sess := h.sessions.Create(userID)

	// Сохраняем идентичность best-effort: ошибка не мешает созданию сессии
	if err := h.identity.SaveUserSession(r.Context(), domain.UserSession{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	}); err != nil {
		h.logger.Warn("POST /sessions - Failed to persist user identity: user_id=%s, error=%v", userID, err)
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, user_id=%s", sess.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, session.NewView(sess))
}
