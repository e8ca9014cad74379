package select_spot

import "github.com/m04kA/SMC-ParkingService/internal/service/session"

type SessionManager interface {
	SelectSpot(sessionID, spotID string) (session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
