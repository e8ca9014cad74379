package select_lot

import "github.com/m04kA/SMC-ParkingService/internal/service/session"

type SessionManager interface {
	SelectLot(sessionID, lotID string) (session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
