package create_session

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

type SessionManager interface {
	Create(userID string) session.Session
}

// IdentityStore персистит идентичность пользователя между запусками
type IdentityStore interface {
	SaveUserSession(ctx context.Context, session domain.UserSession) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
