package choose_time

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/service/session"
)

type SessionManager interface {
	ChooseTime(sessionID string, start time.Time, durationHours int) (session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
